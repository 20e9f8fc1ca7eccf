// Package kittest provides test support for widgetkit: a controllable
// clock, display-list inspection helpers, and pointer gesture
// synthesis. It is imported only from _test files.
package kittest
