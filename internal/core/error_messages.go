package core

// # Error Codes Reference
//
// This file defines user-facing error messages with codes for support
// reference. Operators can quote a code from the API or the logs to find
// what went wrong.
//
// Error codes are grouped by category:
//
// # Validation Errors (VAL001-VAL099)
//
// Group-level decode failures. Each one drops a single record, never a file:
//
//	VAL002 - Invalid number: A numeric column holds a non-numeral
//	         Action: Check the published file for stray text in count columns
//	         Patterns: "invalid number"
//
//	VAL004 - Missing column: A required column is absent from the header or row
//	         Action: Check the file layout has not changed
//	         Patterns: "missing required column"
//
//	VAL006 - Invalid enum: Value is not a known division
//	         Action: Add the division if it was created by a redistribution
//	         Patterns: "invalid enum"
//
//	VAL007 - Incomplete group: The file ended part way through a record
//	         Action: Check the file was downloaded in full
//	         Patterns: "incomplete record group"
//
// # File Errors (FILE001-FILE099)
//
//	FILE003 - Encoding error: File is not valid UTF-8
//	          Action: Re-download the file; AEC publishes UTF-8
//	          Patterns: "encoding error"
//
//	FILE005 - Empty file: The file has no data rows
//	          Action: Check the election code is correct
//	          Patterns: "empty file"
//
// # Source Errors (SRC001-SRC099)
//
// Errors fetching published files:
//
//	SRC001 - Bad status: The results server returned an unexpected status
//	         Action: Check the election code and file name
//	         Patterns: "unexpected status"
//
//	SRC002 - Too many fetches: The fetch limit is saturated
//	         Action: Please wait a moment and try again
//	         Patterns: "too many fetches"
//
//	SRC003 - Unreachable: Unable to reach the results server
//	         Action: Check network access and SOURCE_BASE_URL
//	         Patterns: "no such host", "connection refused"
//
// # Cache Errors (CACHE001-CACHE099)
//
//	CACHE001 - Cache miss: No cached results for this election
//	           Action: Run "elc load" to fetch and decode it
//	           Patterns: "cache miss"
//
//	CACHE002 - Unknown backend: CACHE_BACKEND is not recognised
//	           Action: Use file, postgres or sqlite
//	           Patterns: "unknown cache backend"
//
// # API Errors (API001-API099)
//
//	API001 - Election not found: The year has not been loaded
//	         Action: Check /api/elections for loaded years
//	         Patterns: "election not found"
//
//	API002 - Unknown kind: The record kind does not exist
//	         Action: Check /api/kinds for valid kinds
//	         Patterns: "unknown kind"
//
//	API003 - Invalid year: The year is not a number
//	         Action: Use a four digit year such as 2022
//	         Patterns: "invalid year"
//
// # Auth Errors (AUTH001-AUTH099)
//
//	AUTH001 - Missing key: The API requires an X-API-Key header
//	          Action: Send a key listed in API_KEYS
//	          Patterns: "missing api key"
//
//	AUTH002 - Invalid key: The X-API-Key header is not recognised
//	          Action: Send a key listed in API_KEYS
//	          Patterns: "invalid api key"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Cancelled: Request was cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Timeout: Request timed out
//	         Patterns: "context deadline exceeded", "timeout"
//
//	REQ003 - Rate limited: Too many API requests from one address
//	         Action: Please wait a minute and try again
//	         Patterns: "rate limit exceeded"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches:
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the logs for the underlying error
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so order matters.
//
// To add a new error pattern:
//  1. Choose the appropriate category and code range
//  2. Add the pattern in the correct position (specific before general)
//  3. Update the reference at the top of this file
var errorPatterns = []errorPattern{
	// =========================================================================
	// Validation Errors (VAL002-VAL007)
	// =========================================================================
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "A numeric column holds a non-numeral",
			Action:  "Check the published file for stray text in count columns",
			Code:    "VAL002",
		},
	},
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "A required column is missing",
			Action:  "Check the file layout has not changed",
			Code:    "VAL004",
		},
	},
	{
		pattern: "invalid enum",
		msg: UserMessage{
			Message: "Value is not a known division",
			Action:  "Add the division if it was created by a redistribution",
			Code:    "VAL006",
		},
	},
	{
		pattern: "incomplete record group",
		msg: UserMessage{
			Message: "The file ended part way through a record",
			Action:  "Check the file was downloaded in full",
			Code:    "VAL007",
		},
	},

	// =========================================================================
	// File Errors (FILE003-FILE005)
	// =========================================================================
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "File is not valid UTF-8",
			Action:  "Re-download the file; AEC publishes UTF-8",
			Code:    "FILE003",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file has no data rows",
			Action:  "Check the election code is correct",
			Code:    "FILE005",
		},
	},

	// =========================================================================
	// Source Errors (SRC001-SRC003)
	// =========================================================================
	{
		pattern: "unexpected status",
		msg: UserMessage{
			Message: "The results server returned an unexpected status",
			Action:  "Check the election code and file name",
			Code:    "SRC001",
		},
	},
	{
		pattern: "too many fetches",
		msg: UserMessage{
			Message: "Too many fetches in progress",
			Action:  "Please wait a moment and try again",
			Code:    "SRC002",
		},
	},
	{
		pattern: "no such host",
		msg: UserMessage{
			Message: "Unable to reach the results server",
			Action:  "Check network access and SOURCE_BASE_URL",
			Code:    "SRC003",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to reach the results server",
			Action:  "Check network access and SOURCE_BASE_URL",
			Code:    "SRC003",
		},
	},

	// =========================================================================
	// Cache Errors (CACHE001-CACHE002)
	// =========================================================================
	{
		pattern: "cache miss",
		msg: UserMessage{
			Message: "No cached results for this election",
			Action:  `Run "elc load" to fetch and decode it`,
			Code:    "CACHE001",
		},
	},
	{
		pattern: "unknown cache backend",
		msg: UserMessage{
			Message: "Cache backend is not recognised",
			Action:  "Use file, postgres or sqlite",
			Code:    "CACHE002",
		},
	},

	// =========================================================================
	// API Errors (API001-API003)
	// =========================================================================
	{
		pattern: "election not found",
		msg: UserMessage{
			Message: "Election has not been loaded",
			Action:  "Check /api/elections for loaded years",
			Code:    "API001",
		},
	},
	{
		pattern: "unknown kind",
		msg: UserMessage{
			Message: "Unknown record kind",
			Action:  "Check /api/kinds for valid kinds",
			Code:    "API002",
		},
	},
	{
		pattern: "invalid year",
		msg: UserMessage{
			Message: "Year is not valid",
			Action:  "Use a four digit year such as 2022",
			Code:    "API003",
		},
	},

	// =========================================================================
	// Auth Errors (AUTH001-AUTH002)
	// =========================================================================
	{
		pattern: "missing api key",
		msg: UserMessage{
			Message: "API key required",
			Action:  "Send a key listed in API_KEYS",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "invalid api key",
		msg: UserMessage{
			Message: "API key not recognised",
			Action:  "Send a key listed in API_KEYS",
			Code:    "AUTH002",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ003)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Raise SOURCE_TIMEOUT or try again later",
			Code:    "REQ002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Raise SOURCE_TIMEOUT or try again later",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit exceeded",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a minute and try again",
			Code:    "REQ003",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the underlying error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := &MissingFieldError{Field: "PartyAb"}
//	msg := MapError(err)
//	// msg.Code == "VAL004"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
