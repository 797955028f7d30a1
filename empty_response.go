package valkit

import "net/http"

// emptyResponse is an HTTP response with only a status code.
type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if e.status == 0 {
		return nil
	}
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates an empty response with a custom status code.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// silent is a Response that writes nothing. Used when a cancelled request
// must not receive a partial response.
type silentResponse struct{}

func (silentResponse) Render(http.ResponseWriter, *http.Request) error {
	return nil
}
