package models

import "time"

// Hit is one recorded inbound request/response event. It is created once by
// the HTTP interception collaborator when a request completes, persisted
// exactly once by the hit buffer, and read-only to everything downstream.
//
// Example JSON:
//
//	{
//	  "id": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "logged": "2026-08-29T18:03:15Z",
//	  "host": "app.example.com",
//	  "path": "/api/management/users",
//	  "method": "GET",
//	  "statusCode": 200,
//	  "subStatusCode": 0,
//	  "duration": 42000000,
//	  "identity": "alice",
//	  "userAgent": "Mozilla/5.0 ..."
//	}
type Hit struct {
	ID            string        `json:"id"`
	Logged        time.Time     `json:"logged"`
	Host          string        `json:"host"`
	Path          string        `json:"path"`
	Method        string        `json:"method"`
	StatusCode    int           `json:"statusCode"`
	SubStatusCode int           `json:"subStatusCode"`
	Duration      time.Duration `json:"duration"`
	Identity      string        `json:"identity"`
	UserAgent     string        `json:"userAgent"`
}
