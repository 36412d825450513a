package models

// UserAccount represents an operator account used for login and session
// tracking. Credential material is stored as a salt plus a digest, never the
// plain password.
type UserAccount struct {
	Username   string  `xml:"username"`
	FirstName  string  `xml:"firstname"`
	LastName   string  `xml:"lastname"`
	Email      string  `xml:"email"`
	LastAccess XMLTime `xml:"last_access"`

	// Profile image (relative path under the assets folder).
	Image string `xml:"image"`

	Salt   string `xml:"salt"`
	Digest string `xml:"digest"`
}
