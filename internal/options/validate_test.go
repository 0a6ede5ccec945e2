// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func check(f Field, v string) error {
	var o Options
	o.Set(f, v)
	return ValidateField(f, o)
}

func TestValidateField_Issuer(t *testing.T) {
	assert.NoError(t, check(FieldIssuer, "https://acme.monocloud.com"))
	assert.NoError(t, check(FieldIssuer, "HTTPS://acme.monocloud.com/tenant"))
	assert.Error(t, check(FieldIssuer, "http://acme.monocloud.com"))
	assert.Error(t, check(FieldIssuer, "acme.monocloud.com"))
	assert.Error(t, check(FieldIssuer, "https://"))
	assert.Error(t, check(FieldIssuer, ""))
	assert.Error(t, check(FieldIssuer, "https://acme.monocloud.com/a b"))
	assert.Error(t, check(FieldIssuer, "https://acme monocloud.com"))
	assert.NoError(t, check(FieldIssuer, "  https://acme.monocloud.com  "))
}

func TestValidateField_NonEmpty(t *testing.T) {
	assert.NoError(t, check(FieldClientID, "x"))
	assert.EqualError(t, check(FieldClientID, "   "), "Client Id should be a non empty string")
	assert.NoError(t, check(FieldClientSecret, "s"))
	assert.EqualError(t, check(FieldClientSecret, ""), "Client Secret should be a non empty string")
}

func TestValidateField_Scopes(t *testing.T) {
	passing := []string{"openid", "profile openid", "email  openid profile", "\topenid\n"}
	for _, s := range passing {
		assert.NoError(t, check(FieldScopes, s), s)
	}
	failing := []string{"", "profile email", "openidx", "open id", "openid-connect", "OPENID"}
	for _, s := range failing {
		assert.EqualError(t, check(FieldScopes, s), "Scope must contain openid", s)
	}
}

func TestValidateField_AppURL(t *testing.T) {
	assert.NoError(t, check(FieldAppURL, "http://localhost:3000"))
	assert.NoError(t, check(FieldAppURL, "https://app.example.com/base"))
	assert.Error(t, check(FieldAppURL, "localhost"))
	assert.Error(t, check(FieldAppURL, "/relative/path"))
	assert.EqualError(t, check(FieldAppURL, ""), "App Url should be a valid url")
	assert.EqualError(t, check(FieldAppURL, "http://localhost:3000/my app"), "App Url should be a valid url")
	assert.Error(t, check(FieldAppURL, "http://local\thost"))
}

func TestValidateField_CookieSecret(t *testing.T) {
	assert.NoError(t, check(FieldCookieSecret, "12345678"))
	assert.EqualError(t, check(FieldCookieSecret, "1234567"), "Cookie Secret should be atleast 8 characters long")
	assert.Error(t, check(FieldCookieSecret, "   1234567   "))
	// length counts characters, not bytes
	assert.EqualError(t, check(FieldCookieSecret, "ééééé"), "Cookie Secret should be atleast 8 characters long")
	assert.Error(t, check(FieldCookieSecret, "密码密码密码密"))
	assert.NoError(t, check(FieldCookieSecret, "ééééééé8"))
}

func TestValidateField_UnknownField(t *testing.T) {
	assert.Error(t, ValidateField(Field(42), Options{}))
}

func TestValidate_SkipsUnsetFields(t *testing.T) {
	assert.NoError(t, Validate(Options{Command: CommandInit, Framework: FrameworkNextJS}))
}
