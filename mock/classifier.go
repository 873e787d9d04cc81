package mock

import "github.com/webonehq/webone"

var _ webone.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of webone.LinkClassifier.
type LinkClassifier struct {
	IsEmailFn      func(url string) bool
	IsSocialFn     func(url string) bool
	IsSameDomainFn func(root, url string) bool
}

func (c *LinkClassifier) IsEmail(url string) bool {
	return c.IsEmailFn(url)
}

func (c *LinkClassifier) IsSocial(url string) bool {
	return c.IsSocialFn(url)
}

func (c *LinkClassifier) IsSameDomain(root, url string) bool {
	return c.IsSameDomainFn(root, url)
}
