// Package models holds the wire and view types of the logdash client.
package models
