// Package utils holds some generic functions
package utils

import (
	"encoding/json"
	"fmt"
)

// PrettyPrint prints a human readable version of the given struct.
func PrettyPrint(v any) (err error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
