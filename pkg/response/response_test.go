package response

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func encode(t *testing.T, v interface{ Encode() ([]byte, error) }) string {
	t.Helper()
	b, err := v.Encode()
	require.NoError(t, err)
	return string(b)
}

func TestOk(t *testing.T) {
	resp := Ok[any]("done")
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)

	out := encode(t, resp)
	assert.JSONEq(t, `{"success":true,"message":"done"}`, out)
	for _, key := range []string{`"code"`, `"data"`, `"errors"`, `"pagination"`} {
		assert.NotContains(t, out, key)
	}
}

func TestOkDefaultMessage(t *testing.T) {
	assert.Equal(t, defaultOkMessage, Ok[any]("").Message)
	assert.Equal(t, defaultOkMessage, OkWithData(1, "", "").Message)
	assert.Equal(t, defaultPaginatedMessage, OkPaginated([]int{}, 0, 1, 10, "").Message)
}

func TestFail(t *testing.T) {
	resp := Fail[any]("boom")
	assert.False(t, resp.Success)

	out := encode(t, resp)
	assert.JSONEq(t, `{"success":false,"message":"boom"}`, out)
	for _, key := range []string{`"code"`, `"data"`, `"errors"`, `"pagination"`} {
		assert.NotContains(t, out, key)
	}
}

func TestSuccessFieldAlwaysPresent(t *testing.T) {
	out := encode(t, &Response[any]{})
	assert.Equal(t, `{"success":false}`, out)
}

func TestOkWithData(t *testing.T) {
	t.Run("with code", func(t *testing.T) {
		resp := OkWithData(user{ID: 1, Name: "Juan"}, "User found", "FOUND")
		assert.JSONEq(t,
			`{"success":true,"message":"User found","code":"FOUND","data":{"id":1,"name":"Juan"}}`,
			encode(t, resp))
	})

	t.Run("empty code is absent", func(t *testing.T) {
		out := encode(t, OkWithData([]int{1, 2}, "ok", ""))
		assert.NotContains(t, out, `"code"`)
		assert.NotContains(t, out, `"pagination"`)
	})

	t.Run("zero value payload is still present", func(t *testing.T) {
		out := encode(t, OkWithData(0, "ok", ""))
		assert.JSONEq(t, `{"success":true,"message":"ok","data":0}`, out)
	})

	t.Run("nil payload is absent", func(t *testing.T) {
		var users []user
		var byID map[int]user
		var u *user

		for _, out := range []string{
			encode(t, OkWithData(users, "ok", "")),
			encode(t, OkWithData(byID, "ok", "")),
			encode(t, OkWithData(u, "ok", "")),
			encode(t, OkWithData[any](nil, "ok", "")),
		} {
			assert.JSONEq(t, `{"success":true,"message":"ok"}`, out)
			assert.NotContains(t, out, "null")
		}
	})

	t.Run("empty slice payload is kept", func(t *testing.T) {
		out := encode(t, OkWithData([]user{}, "ok", ""))
		assert.JSONEq(t, `{"success":true,"message":"ok","data":[]}`, out)
	})

	t.Run("round trip", func(t *testing.T) {
		in := []user{{ID: 1, Name: "Juan"}, {ID: 2, Name: "María"}}
		b, err := OkWithData(in, "Users", "").Encode()
		require.NoError(t, err)

		var out Response[[]user]
		require.NoError(t, json.Unmarshal(b, &out))
		require.NotNil(t, out.Data)
		assert.Equal(t, in, *out.Data)
		assert.True(t, out.Success)
		assert.Equal(t, "Users", out.Message)
	})
}

func TestOkPaginated(t *testing.T) {
	users := make([]user, 10)
	for i := range users {
		users[i] = user{ID: i + 1}
	}

	resp := OkPaginated(users, 100, 1, 10, "Users")
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 10, resp.Pagination.TotalPages)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(encode(t, resp)), &decoded))
	assert.Equal(t, map[string]any{
		"totalItems":  float64(100),
		"currentPage": float64(1),
		"pageSize":    float64(10),
		"totalPages":  float64(10),
		"hasPrevious": false,
		"hasNext":     true,
	}, decoded["pagination"])
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "code")

	t.Run("nil page is absent", func(t *testing.T) {
		var none []user
		out := encode(t, OkPaginated(none, 0, 1, 10, ""))
		assert.NotContains(t, out, `"data"`)
		assert.NotContains(t, out, "null")
		assert.Contains(t, out, `"pagination"`)
	})

	t.Run("zero page size does not fault", func(t *testing.T) {
		resp := OkPaginated([]user{}, 42, 1, 0, "")
		assert.Equal(t, 0, resp.Pagination.TotalPages)
		assert.False(t, resp.Pagination.HasNext)
	})

	t.Run("round trip", func(t *testing.T) {
		b, err := resp.Encode()
		require.NoError(t, err)
		var out Response[[]user]
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, *resp.Pagination, *out.Pagination)
		assert.Equal(t, users, *out.Data)
	})
}

func TestFailWithErrors(t *testing.T) {
	t.Run("structured detail", func(t *testing.T) {
		resp := FailWithErrors[any]("bad", map[string]any{"reason": "quota", "limit": 5})
		assert.JSONEq(t,
			`{"success":false,"message":"bad","errors":{"limit":5,"reason":"quota"}}`,
			encode(t, resp))
	})

	t.Run("nil detail is absent", func(t *testing.T) {
		out := encode(t, FailWithErrors[any]("bad", nil))
		assert.NotContains(t, out, `"errors"`)
	})

	t.Run("typed nil detail is absent", func(t *testing.T) {
		var detail map[string]string
		out := encode(t, FailWithErrors[any]("bad", detail))
		assert.NotContains(t, out, `"errors"`)
		assert.NotContains(t, out, "null")
	})

	t.Run("scalar detail", func(t *testing.T) {
		assert.JSONEq(t, `{"success":false,"message":"bad","errors":"oops"}`,
			encode(t, FailWithErrors[any]("bad", "oops")))
	})
}

func TestValidationError(t *testing.T) {
	fields := map[string][]string{
		"name":  {"is required", "must be at most 120 characters"},
		"email": {"must be a valid email"},
	}
	resp := ValidationError[any]("Validation failed", fields)
	assert.False(t, resp.Success)

	var decoded struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(encode(t, resp)), &decoded))
	assert.False(t, decoded.Success)
	assert.Equal(t, fields, decoded.Errors)
	assert.Equal(t, []string{"is required", "must be at most 120 characters"}, decoded.Errors["name"])

	t.Run("empty map is absent", func(t *testing.T) {
		out := encode(t, ValidationError[any]("Validation failed", map[string][]string{}))
		assert.NotContains(t, out, `"errors"`)
		out = encode(t, ValidationError[any]("Validation failed", nil))
		assert.NotContains(t, out, `"errors"`)
	})
}

func TestFailureShortcuts(t *testing.T) {
	cases := []struct {
		name    string
		resp    *Response[any]
		code    string
		message string
	}{
		{name: "not found", resp: NotFound[any](""), code: CodeNotFound, message: defaultNotFoundMessage},
		{name: "not found custom", resp: NotFound[any]("item missing"), code: CodeNotFound, message: "item missing"},
		{name: "unauthorized", resp: Unauthorized[any](""), code: CodeUnauthorized, message: defaultUnauthorizedMessage},
		{name: "server error", resp: ServerError[any](""), code: CodeInternalError, message: defaultServerErrorMessage},
		{name: "with code", resp: FailWithCode[any]("nope", "CONFLICT"), code: "CONFLICT", message: "nope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.resp.Success)
			assert.Equal(t, tc.code, tc.resp.Code)
			assert.Equal(t, tc.message, tc.resp.Message)
			out := encode(t, tc.resp)
			assert.NotContains(t, out, `"data"`)
			assert.NotContains(t, out, `"errors"`)
		})
	}
}

func TestIdempotentConstruction(t *testing.T) {
	build := func() *Response[[]user] {
		return OkPaginated([]user{{ID: 1, Name: "a"}}, 11, 2, 5, "page")
	}
	a, b := build(), build()
	assert.Equal(t, a, b)
	assert.Equal(t, encode(t, a), encode(t, b))

	v1 := ValidationError[any]("bad", map[string][]string{"b": {"x"}, "a": {"y", "z"}})
	v2 := ValidationError[any]("bad", map[string][]string{"a": {"y", "z"}, "b": {"x"}})
	assert.Equal(t, encode(t, v1), encode(t, v2))
}

func TestEncodePropagatesPayloadError(t *testing.T) {
	_, err := OkWithData(math.Inf(1), "", "").Encode()
	var unsupported *json.UnsupportedValueError
	assert.ErrorAs(t, err, &unsupported)

	_, err = OkWithData(make(chan int), "", "").Encode()
	var typeErr *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &typeErr)
}
