package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// NetworkQueryer sends the query to a url and returns the response
type NetworkQueryer struct {
	URL         string
	client      *http.Client
	middlewares []NetworkMiddleware
	retrier     Retrier
}

// NewNetworkQueryer returns a NetworkQueryer pointed to the given url
func NewNetworkQueryer(url string) *NetworkQueryer {
	return &NetworkQueryer{
		URL:    url,
		client: http.DefaultClient,
	}
}

// WithMiddlewares returns a network queryer that will apply the provided middlewares
func (q *NetworkQueryer) WithMiddlewares(mwares []NetworkMiddleware) Queryer {
	// for now just change the internal reference
	q.middlewares = mwares

	// return it
	return q
}

// WithHTTPClient lets the user configure the underlying http client being used
func (q *NetworkQueryer) WithHTTPClient(client *http.Client) *NetworkQueryer {
	q.client = client

	return q
}

// WithRetrier assigns a retry strategy consulted when a query fails
func (q *NetworkQueryer) WithRetrier(retrier Retrier) *NetworkQueryer {
	q.retrier = retrier

	return q
}

// Query sends the query to the designated url and decodes the data in the
// response into the receiver. The query is retried for as long as the
// configured retrier allows.
func (q *NetworkQueryer) Query(ctx context.Context, input *QueryInput, receiver interface{}) error {
	attempts := uint(0)

	for {
		attempts++

		err := q.sendQuery(ctx, input, receiver)
		if err == nil {
			return nil
		}

		if q.retrier == nil || !q.retrier.ShouldRetry(err, attempts) {
			return err
		}
	}
}

func (q *NetworkQueryer) sendQuery(ctx context.Context, input *QueryInput, receiver interface{}) error {
	// the payload
	payload, err := json.Marshal(map[string]interface{}{
		"query":         input.Query,
		"variables":     input.Variables,
		"operationName": input.OperationName,
	})
	if err != nil {
		return err
	}

	// construct the initial request we will send to the client
	req, err := http.NewRequestWithContext(ctx, "POST", q.URL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// we could have any number of middlewares that we have to go through so
	for _, mware := range q.middlewares {
		err := mware(req)
		if err != nil {
			return err
		}
	}

	// fire the request to the queryer's url
	resp, err := q.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// read the full body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	result := map[string]interface{}{}
	err = json.Unmarshal(body, &result)
	if err != nil {
		return errors.Errorf("response body was not valid json: %s", string(body))
	}

	// if there is an error
	if _, ok := result["errors"]; ok {
		// a list of errors from the response
		errList := ErrorList{}

		// build up a list of errors
		errs, ok := result["errors"].([]interface{})
		if !ok {
			return errors.New("errors was not a list")
		}

		// a list of error messages
		for _, err := range errs {
			obj, ok := err.(map[string]interface{})
			if !ok {
				return errors.New("encountered non-object error")
			}

			message, ok := obj["message"].(string)
			if !ok {
				return errors.New("error message was not a string")
			}

			errList = append(errList, NewError("", message))
		}

		return errList
	}

	// assign the result under the data key to the receiver
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  receiver,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(result["data"])
}
