package graphql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeError(t *testing.T) {
	// marshal the 2 kinds of errors
	errWithCode, _ := json.Marshal(NewError("ERROR_CODE", "foo"))
	expected, _ := json.Marshal(map[string]interface{}{
		"extensions": map[string]interface{}{
			"code": "ERROR_CODE",
		},
		"message": "foo",
	})

	assert.Equal(t, string(expected), string(errWithCode))
}

func TestErrorList(t *testing.T) {
	list := ErrorList{
		NewError("", "foo"),
		NewError("", "bar"),
	}

	assert.Equal(t, "foo. bar", list.Error())
}

func TestUnsupportedConstructError(t *testing.T) {
	err := unsupportedConstruct("field directive")

	// the message names the offending construct
	assert.Equal(t, "cannot format unsupported construct: field directive", err.Error())
}
