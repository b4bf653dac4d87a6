package domain

import "time"

type Comment struct {
	Id        CommentId
	ThreadId  ThreadId
	Owner     UserId
	Content   string
	CreatedAt time.Time
	IsDeleted bool
}

// CommentWithUsername is a comment joined with its owner's username
type CommentWithUsername struct {
	Comment
	Username Username
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

type CommentDetail struct {
	Id       CommentId `json:"id"`
	Username Username  `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

// Detail renders the comment for thread views, masking content once soft-deleted.
func (c CommentWithUsername) Detail() CommentDetail {
	content := c.Content
	if c.IsDeleted {
		content = DeletedCommentContent
	}
	return CommentDetail{
		Id:       c.Id,
		Username: c.Username,
		Date:     c.CreatedAt,
		Content:  content,
	}
}
