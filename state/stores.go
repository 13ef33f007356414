package state

import (
	"fmt"
	"regexp"

	"github.com/harisharnamm/rasoi-v1-sub000/entity"
)

var (
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9 \-()]{7,20}$`)
)

type StorePatch struct {
	Name      *string                  `json:"name"`
	Address   *string                  `json:"address"`
	Latitude  *float64                 `json:"latitude"`
	Longitude *float64                 `json:"longitude"`
	Hours     *[]entity.OperatingHours `json:"hours"`
	Manager   *entity.StoreManager     `json:"manager"`
	Phone     *string                  `json:"phone"`
	Email     *string                  `json:"email"`
	Images    *[]string                `json:"images"`
	Documents *[]string                `json:"documents"`
	Status    *entity.StoreStatus      `json:"status"`
}

// AddStore validates the whole record and returns every problem at once,
// so the form can show the full list.
func (c *Container) AddStore(s entity.Store) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if problems := validateStore(&s); len(problems) > 0 {
		return "", &ValidationError{Problems: problems}
	}

	s.ID = newID()
	if s.Status == "" {
		s.Status = entity.StoreActive
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	if s.Documents == nil {
		s.Documents = []string{}
	}
	s.CreatedAt = now()
	s.UpdatedAt = s.CreatedAt
	c.snap.Stores = append(append([]entity.Store(nil), c.snap.Stores...), s)

	c.commit("stores", "add", s.ID)
	return s.ID, nil
}

func (c *Container) UpdateStore(id string, patch StorePatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.storeIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "store", ID: id}
	}

	stores := append([]entity.Store(nil), c.snap.Stores...)
	s := stores[idx]
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.Latitude != nil {
		s.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		s.Longitude = *patch.Longitude
	}
	if patch.Hours != nil {
		s.Hours = append([]entity.OperatingHours(nil), (*patch.Hours)...)
	}
	if patch.Manager != nil {
		s.Manager = *patch.Manager
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Images != nil {
		s.Images = append([]string(nil), (*patch.Images)...)
	}
	if patch.Documents != nil {
		s.Documents = append([]string(nil), (*patch.Documents)...)
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}

	// Validate the merged record so a patch cannot corrupt a valid store.
	if problems := validateStore(&s); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	s.UpdatedAt = now()
	stores[idx] = s
	c.snap.Stores = stores

	c.commit("stores", "update", id)
	return nil
}

func (c *Container) DeleteStore(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.storeIndex(id)
	if idx < 0 {
		return &NotFoundError{Entity: "store", ID: id}
	}

	stores := make([]entity.Store, 0, len(c.snap.Stores)-1)
	stores = append(stores, c.snap.Stores[:idx]...)
	stores = append(stores, c.snap.Stores[idx+1:]...)
	c.snap.Stores = stores

	c.commit("stores", "delete", id)
	return nil
}

func (c *Container) Stores() []entity.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Store(nil), c.snap.Stores...)
}

func (c *Container) Store(id string) (entity.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.storeIndex(id)
	if idx < 0 {
		return entity.Store{}, &NotFoundError{Entity: "store", ID: id}
	}
	return c.snap.Stores[idx], nil
}

func (c *Container) storeIndex(id string) int {
	for i := range c.snap.Stores {
		if c.snap.Stores[i].ID == id {
			return i
		}
	}
	return -1
}

func validateStore(s *entity.Store) []string {
	var problems []string
	if s.Name == "" {
		problems = append(problems, "name is required")
	}
	if s.Address == "" {
		problems = append(problems, "address is required")
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		problems = append(problems, "latitude must be between -90 and 90")
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		problems = append(problems, "longitude must be between -180 and 180")
	}
	if len(s.Hours) != 7 {
		problems = append(problems, "operating hours must have exactly 7 entries, one per weekday")
	}
	for _, h := range s.Hours {
		if h.Closed {
			continue
		}
		if !timeRe.MatchString(h.Open) || !timeRe.MatchString(h.Close) {
			problems = append(problems, fmt.Sprintf("%s: open/close must be HH:MM", h.Day))
		}
	}
	if s.Email != "" && !emailRe.MatchString(s.Email) {
		problems = append(problems, "email is not valid")
	}
	if s.Phone != "" && !phoneRe.MatchString(s.Phone) {
		problems = append(problems, "phone is not valid")
	}
	if s.Manager.Email != "" && !emailRe.MatchString(s.Manager.Email) {
		problems = append(problems, "manager email is not valid")
	}
	if s.Manager.Phone != "" && !phoneRe.MatchString(s.Manager.Phone) {
		problems = append(problems, "manager phone is not valid")
	}
	switch s.Status {
	case "", entity.StoreActive, entity.StoreInactive, entity.StoreMaintenance:
	default:
		problems = append(problems, fmt.Sprintf("unknown status %q", s.Status))
	}
	return problems
}
