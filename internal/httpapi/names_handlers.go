package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"lnr.org/internal/audit"
	"lnr.org/internal/names"
	"lnr.org/internal/ownership"
)

type nameResponse struct {
	Domain     string `json:"domain"`
	Identifier string `json:"identifier"`
}

type addressResponse struct {
	Domain  string `json:"domain"`
	Address string `json:"address"`
}

type ownerResponse struct {
	Domain     string `json:"domain"`
	Registered bool   `json:"registered"`
	Owner      string `json:"owner,omitempty"`
	Mode       string `json:"mode"`
	TokenID    string `json:"token_id,omitempty"`
}

type primaryResponse struct {
	Address string `json:"address"`
	Domain  string `json:"domain"`
}

// inputErrors maps validation failures to the kind reported to clients.
var inputErrors = []struct {
	err  error
	kind string
}{
	{names.ErrEmptyInput, "empty_input"},
	{names.ErrNormalization, "normalization"},
	{names.ErrSubdomainNotSupported, "subdomain_not_supported"},
	{names.ErrWrongSuffix, "wrong_suffix"},
	{names.ErrTooLong, "too_long"},
	{names.ErrCapacityExceeded, "capacity_exceeded"},
	{names.ErrInvalidEncoding, "invalid_encoding"},
}

func (a *API) handleNameResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/v1/names/")
	name, sub, _ := strings.Cut(path, "/")
	if name == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	switch sub {
	case "":
		a.getName(w, r, name)
	case "address":
		a.getNameAddress(w, r, name)
	case "owner":
		a.getNameOwner(w, r, name)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) handleAddressResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/v1/addresses/")
	addr, ok := strings.CutSuffix(path, "/primary")
	if !ok || addr == "" || strings.Contains(addr, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	a.getPrimary(w, r, addr)
}

func (a *API) getName(w http.ResponseWriter, r *http.Request, raw string) {
	domain, err := names.Validate(raw)
	if err != nil {
		handleNamesError(w, r, err)
		return
	}
	id, err := names.Encode(domain)
	if err != nil {
		handleNamesError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nameResponse{Domain: domain.String(), Identifier: id.Hex()})
}

func (a *API) getNameAddress(w http.ResponseWriter, r *http.Request, raw string) {
	addr, found, err := a.names.ResolveName(r.Context(), raw)
	if err != nil {
		handleNamesError(w, r, err)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "name does not resolve")
		return
	}
	domain, _ := names.Validate(raw)
	writeJSON(w, http.StatusOK, addressResponse{Domain: domain.String(), Address: addr.Hex()})
}

func (a *API) getNameOwner(w http.ResponseWriter, r *http.Request, raw string) {
	rec, err := a.names.Owner(r.Context(), raw)
	if err != nil {
		handleNamesError(w, r, err)
		return
	}
	domain, _ := names.Validate(raw)
	resp := ownerResponse{
		Domain:     domain.String(),
		Registered: !rec.Absent(),
		Mode:       rec.Mode.String(),
	}
	if !rec.Absent() {
		resp.Owner = rec.Controller.Hex()
	}
	if rec.TokenID != nil {
		resp.TokenID = rec.TokenID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) getPrimary(w http.ResponseWriter, r *http.Request, raw string) {
	if !common.IsHexAddress(raw) {
		writeErrorKind(w, r, http.StatusBadRequest, "invalid_address", "address must be 20 bytes of hex")
		return
	}
	addr := common.HexToAddress(raw)
	domain, found, err := a.names.LookupAddress(r.Context(), addr)
	if err != nil {
		handleNamesError(w, r, err)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "no primary name")
		return
	}
	writeJSON(w, http.StatusOK, primaryResponse{Address: addr.Hex(), Domain: domain.String()})
}

func handleNamesError(w http.ResponseWriter, r *http.Request, err error) {
	for _, ie := range inputErrors {
		if errors.Is(err, ie.err) {
			writeErrorKind(w, r, http.StatusBadRequest, ie.kind, err.Error())
			return
		}
	}
	if errors.Is(err, ownership.ErrRemoteQuery) {
		writeErrorKind(w, r, http.StatusBadGateway, "remote_query", err.Error())
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	writeErrorKind(w, r, code, "", msg)
}

func writeErrorKind(w http.ResponseWriter, r *http.Request, code int, kind, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if kind != "" {
		payload["kind"] = kind
	}
	if rid := audit.RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
