package api

import (
	"fmt"
	"strings"
)

// URLBuilder renders request URLs from the credential scope plus a
// resource identity and extra query arguments. Pure string templating;
// argument strings arrive already encoded from the query builder.
type URLBuilder struct {
	host       string
	instance   int64
	department int64
	token      string
}

// NewURLBuilder creates a builder bound to one credential scope. A host
// without a scheme is addressed over HTTPS.
func NewURLBuilder(host string, instance, department int64, token string) *URLBuilder {
	return &URLBuilder{
		host:       strings.TrimSuffix(host, "/"),
		instance:   instance,
		department: department,
		token:      token,
	}
}

// Object builds the URL for a read/update/delete call. objectID 0 means
// the collection (list or create).
func (b *URLBuilder) Object(resource string, objectID int64, args []string) string {
	path := resource
	if objectID != 0 {
		path = fmt.Sprintf("%s/%d", resource, objectID)
	}

	return b.build(path, args)
}

// Schema builds the URL for a module or entity schema call.
func (b *URLBuilder) Schema(resource string) string {
	return b.build(resource+"/schema", nil)
}

// Custom builds the URL for a custom action nested under a resource, such
// as the file-upload target.
func (b *URLBuilder) Custom(resource, action string, args []string) string {
	return b.build(resource+"/"+action, args)
}

// SecondLevel builds the URL for listing a second-level entity nested
// under a module.
func (b *URLBuilder) SecondLevel(module, entity string, args []string) string {
	return b.build(module+"/"+entity, args)
}

func (b *URLBuilder) build(path string, args []string) string {
	base := b.host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	url := fmt.Sprintf("%s/api/v1/%d/%d/%s?_token_=%s",
		base, b.instance, b.department, path, b.token)

	for _, arg := range args {
		if arg == "" {
			continue
		}

		url += "&" + arg
	}

	return url
}
