package handler

import "regexp"

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRE = regexp.MustCompile(`^.{3,20}$`)
	emailRE    = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

func validUsername(username string) bool {
	return usernameRE.MatchString(username)
}

func validPassword(password string) bool {
	return passwordRE.MatchString(password)
}

// validEmail accepts an empty email; the field is optional.
func validEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}
