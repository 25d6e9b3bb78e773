package request

import (
	"fmt"
	"strings"
)

// SubmitEdit is one edit order: a stored input image plus the user's
// instruction. The instruction guard lives here; the model client itself
// never receives an empty one.
type SubmitEdit struct {
	ImageId     int    `form:"image_id" json:"image_id"`
	Instruction string `form:"instruction" json:"instruction"`
	GroupId     string `form:"group_id" json:"group_id"`
	Credential  string `form:"-" json:"-"` // from header, never from body
}

func (s *SubmitEdit) Valid() error {
	if s.ImageId <= 0 {
		return fmt.Errorf("invalid image_id: %d, must be greater than 0", s.ImageId)
	}
	if strings.TrimSpace(s.Instruction) == "" {
		return fmt.Errorf("instruction must not be empty")
	}
	return nil
}
