package zerochan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNon200IsFailure(t *testing.T) {
	outcome := Classify(404, []byte(`{"items":[]}`), "https://www.zerochan.net/x")

	failure, ok := outcome.(FetchFailure)
	require.True(t, ok)
	assert.Equal(t, ReasonHTTPStatus, failure.Reason)
	assert.Equal(t, 404, failure.Status)
}

func TestClassifyJSONBody(t *testing.T) {
	body := []byte(`{"items":[{"id":1}],"total":10}`)
	outcome := Classify(200, body, "https://www.zerochan.net/Yoimiya?json=")

	data, ok := outcome.(StructuredData)
	require.True(t, ok)
	assert.Equal(t, body, data.Payload)
	assert.Equal(t, "https://www.zerochan.net/Yoimiya?json=", data.URL)
}

func TestClassifyRedirectPageByTitle(t *testing.T) {
	body := []byte(`<html><head><title>Furina de Fontaine - Zerochan Anime Image Board</title></head><body></body></html>`)
	outcome := Classify(200, body, "https://www.zerochan.net/Furina+de+Fontaine")

	redirect, ok := outcome.(RedirectTag)
	require.True(t, ok)
	assert.Equal(t, "Furina de Fontaine", redirect.Tag)
}

func TestClassifyRedirectPageByShortTitle(t *testing.T) {
	body := []byte(`<html><head><title>Furina de Fontaine - Zerochan</title></head></html>`)
	outcome := Classify(200, body, "")

	redirect, ok := outcome.(RedirectTag)
	require.True(t, ok)
	assert.Equal(t, "Furina de Fontaine", redirect.Tag)
}

func TestClassifyRedirectPageByCanonicalLink(t *testing.T) {
	body := []byte(`<html><head><link rel="canonical" href="https://www.zerochan.net/Kamisato+Ayaka"></head></html>`)
	outcome := Classify(200, body, "")

	redirect, ok := outcome.(RedirectTag)
	require.True(t, ok)
	assert.Equal(t, "Kamisato Ayaka", redirect.Tag)
}

func TestClassifyTitleTakesPrecedenceOverCanonical(t *testing.T) {
	body := []byte(`<html><head>` +
		`<title>Yoimiya - Zerochan Anime Image Board</title>` +
		`<link rel="canonical" href="https://www.zerochan.net/Other+Tag">` +
		`</head></html>`)
	outcome := Classify(200, body, "")

	redirect, ok := outcome.(RedirectTag)
	require.True(t, ok)
	assert.Equal(t, "Yoimiya", redirect.Tag)
}

func TestClassifyUnextractableBodyIsFailure(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("plain text response"),
		[]byte(`<html><head><title>Some Other Site</title></head></html>`),
		[]byte("<<<<>>>> not really html \x00\x01"),
	}

	for _, body := range cases {
		outcome := Classify(200, body, "")
		failure, ok := outcome.(FetchFailure)
		require.True(t, ok, "body=%q", string(body))
		assert.Equal(t, ReasonUnparseable, failure.Reason)
	}
}

func TestTagFromCanonicalURL(t *testing.T) {
	assert.Equal(t, "Furina de Fontaine", tagFromCanonicalURL("https://www.zerochan.net/Furina+de+Fontaine"))
	assert.Equal(t, "Yoimiya", tagFromCanonicalURL("/Yoimiya"))
	assert.Equal(t, "", tagFromCanonicalURL("https://www.zerochan.net/"))
	assert.Equal(t, "Hu Tao", tagFromCanonicalURL("https://www.zerochan.net/Hu%20Tao"))
}
