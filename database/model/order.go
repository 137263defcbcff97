package model

import "time"

// Order statuses walked by the back-office.
const (
	OrderStatusNew        = "new"
	OrderStatusContacted  = "contacted"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)

// Order is a lead-capture inquiry submitted from the public site.
// ServiceId is optional: general inquiries carry none.
type Order struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference string    `json:"reference" gorm:"uniqueIndex"`
	ServiceId *int      `json:"serviceId"`
	Service   *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceId"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status" gorm:"not null;default:new;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Client is a managed customer record in the admin back-office.
type Client struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
