package domain

import (
	"fmt"

	"github.com/google/uuid"
)

func NewId(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func (t *Thread) String() string {
	return fmt.Sprintf("[id:%s, title:%s, owner:%s, created:%s]", t.Id, t.Title, t.Owner, t.CreatedAt)
}

func (c *Comment) String() string {
	return fmt.Sprintf("[id:%s, thread:%s, owner:%s, deleted:%t, created:%s]", c.Id, c.ThreadId, c.Owner, c.IsDeleted, c.CreatedAt)
}
