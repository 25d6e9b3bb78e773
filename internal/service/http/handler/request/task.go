package request

import "fmt"

type TaskQuery struct {
	ID      int    `form:"id"`
	GroupId string `form:"group_id"`
}

func (t *TaskQuery) Valid() error {
	if t.ID <= 0 && t.GroupId == "" {
		return fmt.Errorf("must fill id or group_id")
	}
	return nil
}
