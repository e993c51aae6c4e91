package repoargs

type CreateUser struct {
	UserID   string
	Password string
}
