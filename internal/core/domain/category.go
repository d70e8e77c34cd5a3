package domain

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Image       string
	ParentID    string
	SortOrder   int
	Active      bool
}

func (c Category) Validate() error {
	var v ValidationError
	if c.Name == "" {
		v.Add("name", "is required")
	}
	if c.ID != "" && c.ParentID == c.ID {
		v.Add("parent_id", "category cannot be its own parent")
	}
	return v.Err()
}
