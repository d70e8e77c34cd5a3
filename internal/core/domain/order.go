package domain

import (
	"fmt"
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped,
		OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Verifiable reports whether an admin may still approve or reject the payment.
func (s PaymentStatus) Verifiable() bool {
	return s == PaymentUnpaid || s == PaymentPending
}

type (
	Order struct {
		ID              string
		Number          string
		Customer        OrderCustomer
		Items           []OrderItem
		Subtotal        float64
		ShippingFee     float64
		Total           float64
		Currency        string
		Status          OrderStatus
		Payment         Payment
		ShippingAddress string
		Note            string
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}

	OrderCustomer struct {
		Name  string
		Email string
		Phone string
	}

	OrderItem struct {
		ProductID string
		Name      string
		Quantity  int
		UnitPrice float64
		Size      string
		Color     string
	}

	Payment struct {
		Method    string
		Reference string
		Status    PaymentStatus
		ProofURL  string
	}
)

type OrderQuery struct {
	ListQuery
	Status OrderStatus
}

// A PaymentDecision is the admin verdict on a submitted payment.
type PaymentDecision struct {
	Approved bool
	Note     string
}

func (d PaymentDecision) Status() PaymentStatus {
	if d.Approved {
		return PaymentVerified
	}
	return PaymentRejected
}

func (d PaymentDecision) Validate() error {
	if !d.Approved && d.Note == "" {
		return Invalid("note", "is required when rejecting a payment")
	}
	return nil
}

func ErrTransition(from, to OrderStatus) error {
	return fmt.Errorf("%w: order cannot move from %s to %s", ErrConflict, from, to)
}
