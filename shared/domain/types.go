package domain

type (
	UserId    = string
	Username  = string
	Password  = string
	ThreadId  = string
	CommentId = string
)

// DeletedCommentContent replaces the content of soft-deleted comments in thread views.
const DeletedCommentContent = "**komentar telah dihapus**"

// id prefixes, the full id is "<prefix>-<uuid>"
const (
	UserIdPrefix    = "user"
	ThreadIdPrefix  = "thread"
	CommentIdPrefix = "comment"
)
