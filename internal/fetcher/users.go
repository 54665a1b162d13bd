package fetcher

import (
	"helperkit/internal/errors"
	"helperkit/internal/jsonutil"
)

// User is one record of the placeholder user list
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     struct {
		Lat string `json:"lat"`
		Lng string `json:"lng"`
	} `json:"geo"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// DecodeUsers parses a user list response body. The payload shape is not
// validated beyond what JSON decoding enforces.
func DecodeUsers(resp *Response) ([]User, error) {
	if resp == nil {
		return nil, errors.NewValidationError("response", "response is nil")
	}
	users, err := jsonutil.Decode[[]User](resp.Body)
	if err != nil {
		return nil, errors.WrapWithContext("decode users", err)
	}
	return users, nil
}
