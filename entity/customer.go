package entity

import "time"

// CustomerSegment is assigned externally (analytics), not derived here.
type CustomerSegment string

const (
	SegmentVIP     CustomerSegment = "vip"
	SegmentRepeat  CustomerSegment = "repeat"
	SegmentAtRisk  CustomerSegment = "at-risk"
	SegmentOneTime CustomerSegment = "one-time"
	SegmentDormant CustomerSegment = "inactive"
)

type Customer struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone"`
	Email               string          `json:"email"`
	TotalOrders         int             `json:"totalOrders"`
	LifetimeValue       float64         `json:"lifetimeValue"`
	AverageOrderValue   float64         `json:"averageOrderValue"`
	Segment             CustomerSegment `json:"segment"`
	PreferredCategories []string        `json:"preferredCategories"`
	Tags                []string        `json:"tags"`
	Notes               string          `json:"notes"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
