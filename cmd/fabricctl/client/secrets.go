package client

import (
	"context"
	"net/http"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// secretValueWire is a secret value resource as the gateway describes it;
// the resource name is the version.
type secretValueWire struct {
	Name       string `json:"name"`
	Properties struct {
		Value string `json:"value,omitempty"`
	} `json:"properties"`
}

// secretVersions lists the versions stored under one secret name.
func (c *RestConnection) secretVersions(ctx context.Context, name string, timeout time.Duration) ([]string, error) {
	var result struct {
		Items []secretValueWire `json:"Items"`
	}
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodGet,
		path:       "/Resources/Secrets/{secretName}/values",
		apiVersion: apiVersionResources,
		pathParams: map[string]string{"secretName": name},
		result:     &result,
	})
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		versions = append(versions, item.Name)
	}
	return versions, nil
}

// secretValue reads the value of one secret version.
func (c *RestConnection) secretValue(ctx context.Context, ref fabric.SecretReference, timeout time.Duration) (string, error) {
	var result struct {
		Value string `json:"value"`
	}
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Resources/Secrets/{secretName}/values/{version}/list_value",
		apiVersion: apiVersionResources,
		pathParams: map[string]string{"secretName": ref.Name, "version": ref.Version},
		result:     &result,
	})
	return result.Value, err
}

// GetSecrets reads the referenced secrets. A reference without a version
// expands to every stored version.
func (c *RestConnection) GetSecrets(ctx context.Context, refs []fabric.SecretReference, includeValue bool, timeout time.Duration) ([]fabric.Secret, error) {
	var secrets []fabric.Secret
	for _, ref := range refs {
		expanded := []fabric.SecretReference{ref}
		if ref.Version == "" {
			versions, err := c.secretVersions(ctx, ref.Name, timeout)
			if err != nil {
				return nil, err
			}
			expanded = expanded[:0]
			for _, v := range versions {
				expanded = append(expanded, fabric.SecretReference{Name: ref.Name, Version: v})
			}
		} else {
			_, err := c.execute(ctx, timeout, request{
				method:     http.MethodGet,
				path:       "/Resources/Secrets/{secretName}/values/{version}",
				apiVersion: apiVersionResources,
				pathParams: map[string]string{"secretName": ref.Name, "version": ref.Version},
			})
			if err != nil {
				return nil, err
			}
		}

		for _, r := range expanded {
			secret := fabric.Secret{SecretReference: r}
			if includeValue {
				value, err := c.secretValue(ctx, r, timeout)
				if err != nil {
					return nil, err
				}
				secret.Value = value
			}
			secrets = append(secrets, secret)
		}
	}
	return secrets, nil
}

// SetSecrets stores secret values, one version each.
func (c *RestConnection) SetSecrets(ctx context.Context, secrets []fabric.Secret, timeout time.Duration) ([]fabric.SecretReference, error) {
	stored := make([]fabric.SecretReference, 0, len(secrets))
	for _, s := range secrets {
		body := secretValueWire{Name: s.Version}
		body.Properties.Value = s.Value

		_, err := c.execute(ctx, timeout, request{
			method:     http.MethodPut,
			path:       "/Resources/Secrets/{secretName}/values/{version}",
			apiVersion: apiVersionResources,
			pathParams: map[string]string{"secretName": s.Name, "version": s.Version},
			body:       body,
		})
		if err != nil {
			return stored, err
		}
		stored = append(stored, s.SecretReference)
	}
	return stored, nil
}

// RemoveSecrets deletes the referenced secrets. A reference without a
// version deletes the secret resource with all its versions.
func (c *RestConnection) RemoveSecrets(ctx context.Context, refs []fabric.SecretReference, timeout time.Duration) ([]fabric.SecretReference, error) {
	removed := make([]fabric.SecretReference, 0, len(refs))
	for _, ref := range refs {
		rq := request{
			method:     http.MethodDelete,
			path:       "/Resources/Secrets/{secretName}",
			apiVersion: apiVersionResources,
			pathParams: map[string]string{"secretName": ref.Name},
		}
		if ref.Version != "" {
			rq.path = "/Resources/Secrets/{secretName}/values/{version}"
			rq.pathParams["version"] = ref.Version
		}

		if _, err := c.execute(ctx, timeout, rq); err != nil {
			return removed, err
		}
		removed = append(removed, ref)
	}
	return removed, nil
}
