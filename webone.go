// Package webone provides a web-content extraction service. Given a page's
// raw HTML and its source URL it produces a structured record describing the
// page: title, detected encoding, SEO structured-data blocks, embedded
// scripts and images, meta tags, classified links, and the stripped body
// text. The record is served over a minimal HTTP endpoint.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package webone
