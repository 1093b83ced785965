package entity

import "time"

type BookingStatus string

const (
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusRejected  BookingStatus = "REJECTED"
)

type Booking struct {
	ID          int64         `bson:"_id" json:"id"`
	UID         string        `bson:"uid" json:"uid"`
	EventTypeID *int64        `bson:"eventTypeId,omitempty" json:"eventTypeId"`
	UserID      *int64        `bson:"userId,omitempty" json:"userId"`
	Title       string        `bson:"title" json:"title"`
	StartTime   time.Time     `bson:"startTime" json:"startTime"`
	EndTime     time.Time     `bson:"endTime" json:"endTime"`
	Status      BookingStatus `bson:"status" json:"status"`
}

// CanBeRescheduled reports whether the booking may be moved to another slot.
func (b *Booking) CanBeRescheduled() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusRejected
}
