package domain

import "net/mail"

type Audience string

const (
	AudienceAll         Audience = "all"
	AudienceCustomers   Audience = "customers"
	AudienceSubscribers Audience = "subscribers"
	AudienceCustom      Audience = "custom"
)

type BulkEmail struct {
	Subject    string
	Body       string
	Audience   Audience
	Recipients []string
}

func (e BulkEmail) Validate() error {
	var v ValidationError
	if e.Subject == "" {
		v.Add("subject", "is required")
	}
	if e.Body == "" {
		v.Add("body", "is required")
	}
	switch e.Audience {
	case AudienceAll, AudienceCustomers, AudienceSubscribers:
	case AudienceCustom:
		if len(e.Recipients) == 0 {
			v.Add("recipients", "at least one recipient is required")
		}
	default:
		v.Add("audience", "is unknown")
	}
	for _, r := range e.Recipients {
		if _, err := mail.ParseAddress(r); err != nil {
			v.Add("recipients", "invalid address "+r)
		}
	}
	return v.Err()
}

type EmailResult struct {
	Sent   int
	Failed int
	Errors []string
}
