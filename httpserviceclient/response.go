package httpserviceclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxErrorBody is the most of a failed response body kept in a StatusError.
const maxErrorBody = 512

// StatusError indicates a response with a status code outside of 2xx.
type StatusError struct {
	StatusCode int

	// Body is the leading portion of the response body, if any.
	Body []byte
}

func (se *StatusError) Error() string {
	var o strings.Builder
	o.WriteString("unexpected response status ")
	o.WriteString(strconv.Itoa(se.StatusCode))
	if text := http.StatusText(se.StatusCode); len(text) > 0 {
		o.WriteRune(' ')
		o.WriteString(text)
	}

	return o.String()
}

// CheckStatus returns a *StatusError if the response does not have a 2xx status.
// The response body is not closed.
func CheckStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	se := &StatusError{StatusCode: response.StatusCode}
	if response.Body != nil {
		se.Body, _ = io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	}

	return se
}

// DecodeJSON checks the response status and decodes a JSON body into v.
// The response body is always closed.
func DecodeJSON(response *http.Response, v any) error {
	defer response.Body.Close()
	if err := CheckStatus(response); err != nil {
		return err
	}

	return json.NewDecoder(response.Body).Decode(v)
}
