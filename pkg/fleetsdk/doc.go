// Package fleetsdk provides a typed Go client for the fleet command service,
// plus the API error values the service itself uses to write responses.
//
// Unauthenticated operations and session establishment hang off SDKClient:
//
//	client := fleetsdk.NewSDKClient("http://localhost:8080")
//
//	session, reg, err := client.Register(ctx, fleetsdk.RegisterUserRequest{
//		Name:        "Alice",
//		Email:       "alice@example.com",
//		RawPassword: "correct horse battery staple",
//	})
//	if err != nil {
//		return err
//	}
//
// The registration response carries the one-time user secret token needed to
// register devices:
//
//	deviceID, err := session.RegisterDevice(ctx, "edge-01", reg.UserID, reg.UserSecret)
//
// Commands are issued through the session and polled by devices without
// authentication:
//
//	cmdID, err := session.CreateCommand(ctx, fleetsdk.CreateCommandRequest{
//		DeviceID: deviceID,
//		Name:     "UPDATE",
//		IssuerID: reg.UserID,
//	})
//
//	cmd, err := client.GetMostRecentPendingCommand(ctx, deviceID)
//
// Errors returned by the service decode into *APIError values that can be
// matched with errors.Is against the predefined errors:
//
//	if errors.Is(err, fleetsdk.ErrNotFound) {
//		// no pending command
//	}
package fleetsdk
