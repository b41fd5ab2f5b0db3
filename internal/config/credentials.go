// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pakconf Authors

package config

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// Credentials holds registry credentials in one of three forms: a bearer
// token, a combined basic-auth blob, or a username/password pair.
type Credentials struct {
	Token    string
	Auth     string
	Username string
	Password string
}

// Empty reports whether no credential form is set.
func (c Credentials) Empty() bool {
	return c == Credentials{}
}

// NerfDart reduces a registry URI to the scope prefix its credential keys
// hang off of: "https://registry.npmjs.org/" becomes
// "//registry.npmjs.org/:". A trailing non-directory path component is
// dropped, so "https://host/up/down" scopes to "//host/up/:".
func NerfDart(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("error parsing registry uri %q: %w", uri, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: registry uri %q has no host", ErrInvalidCredentials, uri)
	}

	path := u.EscapedPath()
	if !strings.HasSuffix(path, "/") {
		if i := strings.LastIndex(path, "/"); i >= 0 {
			path = path[:i+1]
		}
	}
	if path == "" {
		path = "/"
	}
	return "//" + u.Host + path + ":", nil
}

// CredentialsByURI resolves the credentials configured for a registry URI.
// Credential keys pass through flattening verbatim, so lookup happens
// against the flat config under the URI's nerf dart. A token wins over a
// username/password pair, which wins over a combined _auth blob. An empty
// Credentials with nil error means none are configured.
func (r *Resolved) CredentialsByURI(uri string) (Credentials, error) {
	dart, err := NerfDart(uri)
	if err != nil {
		return Credentials{}, err
	}

	if token := r.flatString(dart + "_authToken"); token != "" {
		return Credentials{Token: token}, nil
	}

	user := r.flatString(dart + "username")
	pass := r.flatString(dart + "_password")
	if user != "" || pass != "" {
		if user == "" || pass == "" {
			return Credentials{}, fmt.Errorf("%w: %susername and %s_password must be set together", ErrInvalidCredentials, dart, dart)
		}
		decoded, err := base64.StdEncoding.DecodeString(pass)
		if err != nil {
			return Credentials{}, fmt.Errorf("%w: %s_password is not valid base64", ErrInvalidCredentials, dart)
		}
		return Credentials{Username: user, Password: string(decoded)}, nil
	}

	if auth := r.flatString(dart + "_auth"); auth != "" {
		return Credentials{Auth: auth}, nil
	}
	return Credentials{}, nil
}

// SetCredentialsByURI writes cred into the user layer under the URI's nerf
// dart, clearing any previously stored credential form for that registry.
// The change is in-memory until the user layer is saved.
func (r *Resolved) SetCredentialsByURI(uri string, cred Credentials) error {
	dart, err := NerfDart(uri)
	if err != nil {
		return err
	}
	if (cred.Username == "") != (cred.Password == "") {
		return fmt.Errorf("%w: username and password must be set together", ErrInvalidCredentials)
	}

	layer := r.layerByName(LayerUser)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, LayerUser)
	}

	for _, suffix := range []string{"_authToken", "_auth", "username", "_password"} {
		layer.raw.Delete(dart + suffix)
	}

	switch {
	case cred.Token != "":
		layer.raw.Set(dart+"_authToken", cred.Token)
	case cred.Username != "":
		layer.raw.Set(dart+"username", cred.Username)
		layer.raw.Set(dart+"_password", base64.StdEncoding.EncodeToString([]byte(cred.Password)))
	case cred.Auth != "":
		layer.raw.Set(dart+"_auth", cred.Auth)
	}

	r.reflatten()
	return nil
}

func (r *Resolved) flatString(key string) string {
	s, _ := r.flat[key].(string)
	return s
}
