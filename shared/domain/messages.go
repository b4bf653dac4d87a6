package domain

// client-facing messages shared with the storage implementations
const (
	MsgThreadNotFound   = "thread tidak ditemukan"
	MsgCommentNotFound  = "komentar tidak ditemukan"
	MsgUserNotFound     = "user tidak ditemukan"
	MsgNotCommentOwner  = "Anda tidak berhak menghapus komentar ini"
	MsgUsernameTaken    = "username tidak tersedia"
	MsgUsernameUnknown  = "username tidak ditemukan"
	MsgWrongCredentials = "kredensial yang Anda masukkan salah"
	MsgPasswordTooLong  = "tidak dapat membuat user baru karena karakter password melebihi batas limit"
)
