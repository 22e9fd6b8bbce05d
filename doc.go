// Package vix implements a minimal vi-like terminal text viewer.
//
// Users import this single package for the complete public API:
// session lifecycle, terminal raw mode, document loading, and rendering.
package vix
