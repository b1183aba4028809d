package yuque

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/transport"
)

// ===================================================================
// Documents
// ===================================================================
// https://www.yuque.com/yuque/developer/doc

// RepoDocs lists the documents of a repository.
// GET /repos/:namespace/docs
func (c *Client) RepoDocs(ctx context.Context, ns ident.Namespace) ([]Doc, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s/docs", seg)

	var docs []Doc
	if err := c.get(ctx, path, nil, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Doc returns a document by slug.
// GET /repos/:namespace/docs/:slug
func (c *Client) Doc(ctx context.Context, ns ident.Namespace, slug string, q DocQuery) (*DocDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s/docs/%s", seg, escapeSegment(slug))

	var params url.Values
	if q.Raw {
		params = url.Values{"raw": []string{"1"}}
	}

	var doc DocDetail
	if err := c.get(ctx, path, params, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// CreateDoc creates a document. The params are sent as a form body.
// POST /repos/:namespace/docs
func (c *Client) CreateDoc(ctx context.Context, ns ident.Namespace, params CreateDocParams) (*DocDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s/docs", seg)

	body, err := transport.EncodeValues(params)
	if err != nil {
		return nil, err
	}

	var doc DocDetail
	if err := c.post(ctx, path, nil, body, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// UpdateDoc changes a document. The fields travel as query parameters with
// an empty body.
// PUT /repos/:namespace/docs/:id
func (c *Client) UpdateDoc(ctx context.Context, ns ident.Namespace, id int64, params UpdateDocParams) (*DocDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s/docs/%d", seg, id)

	var doc DocDetail
	if err := c.put(ctx, path, params, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DeleteDoc deletes a document and returns it as it was.
// DELETE /repos/:namespace/docs/:id
func (c *Client) DeleteDoc(ctx context.Context, ns ident.Namespace, id int64) (*DocDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s/docs/%d", seg, id)

	var doc DocDetail
	if err := c.delete(ctx, path, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DocURL returns the web address of a document, derived from the API base
// URL's host. Namespaces given by id have no web address.
func (c *Client) DocURL(ns ident.Namespace, slug string) (string, error) {
	if _, byID := ns.ID(); byID {
		return "", fmt.Errorf("namespace %s has no owner/slug form", ns)
	}

	base, err := url.Parse(c.BaseURL())
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}

	u := url.URL{
		Scheme: base.Scheme,
		Host:   base.Host,
		Path:   "/" + ns.Owner() + "/" + ns.Slug() + "/" + slug,
	}
	return u.String(), nil
}
