package auth

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Register struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
