// Package donateitem provides the DonateItem aggregate: goods offered for free
// by a donor, reviewed by an administrator and claimed by an approved requester.
package donateitem
