package httpservice

import (
	"errors"
	"fmt"
)

// badUnmarshaler fails every call, for testing configuration errors
type badUnmarshaler struct{}

func (bu badUnmarshaler) Unmarshal(interface{}) error {
	return errors.New("expected Unmarshal error")
}

func (bu badUnmarshaler) UnmarshalKey(key string, _ interface{}) error {
	return fmt.Errorf("expected UnmarshalKey error from [%s]", key)
}

type badWriter struct{}

func (bw badWriter) Write([]byte) (int, error) {
	return 0, errors.New("expected write error")
}

// getItem is the canonical operation used throughout the tests
func getItem() *Operation {
	return MustOperation(
		GetRequest{
			Name:   "getItem",
			Value:  "/items/{id}",
			Accept: []string{"application/json"},
		},
		PathVariable("id"),
	)
}
