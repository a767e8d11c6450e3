// Package portalapi holds the JSON request and response types of the client
// portal API together with a small typed client for it.
//
// The server encodes these types directly, so a field added here shows up in
// both the HTTP handlers and the client.
//
//	c := portalapi.NewClient("http://localhost:8080")
//	tok, err := c.Login(ctx, "admin@example.com", "secret-password")
//	if err != nil {
//		return err
//	}
//	admin := c.WithToken(tok.AccessToken)
//	res, err := admin.CreateClient(ctx, portalapi.CreateClientRequest{
//		Name:  "Ada Lovelace",
//		Email: "ada@example.com",
//	})
//
// Every failed call returns an *APIError carrying the HTTP status and the
// server's error message.
package portalapi
