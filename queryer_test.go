package graphql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryerFunc_success(t *testing.T) {
	expected := map[string]interface{}{"hello": "world"}

	queryer := QueryerFunc(
		func(*QueryInput) (interface{}, error) {
			return expected, nil
		},
	)

	// a place to write the result
	result := map[string]interface{}{}

	err := queryer.Query(context.Background(), &QueryInput{}, &result)
	if err != nil {
		t.Error(err.Error())
		return
	}

	// make sure we copied the right result
	assert.Equal(t, expected, result)
}

func TestQueryerFunc_failure(t *testing.T) {
	expected := errors.New("message")

	queryer := QueryerFunc(
		func(*QueryInput) (interface{}, error) {
			return nil, expected
		},
	)

	err := queryer.Query(context.Background(), &QueryInput{}, &map[string]interface{}{})

	// make sure we got the right error
	assert.Equal(t, expected, err)
}

func TestMockSuccessQueryer(t *testing.T) {
	expected := map[string]interface{}{"hello": "world"}

	queryer := &MockSuccessQueryer{Value: expected}

	result := map[string]interface{}{}
	err := queryer.Query(context.Background(), &QueryInput{}, &result)
	if assert.NoError(t, err) {
		assert.Equal(t, expected, result)
	}
}
