// Package models defines the plain records mirrored from the back-office
// REST backend. Entities live only in transient UI state; identifiers are
// assigned server-side and are never edited by the console.
package models
