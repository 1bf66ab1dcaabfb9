package constants

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
