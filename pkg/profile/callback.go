package profile

//go:generate mockgen -destination=mocks/mock_callback.go -package=mocks github.com/askiada/go-chain-profile/pkg/profile Callback

// Callback is the port a profile emits values through.
type Callback interface {
	// SendUpdate pushes a state update toward the item.
	SendUpdate(state State)
	// SendCommand pushes a command toward the item.
	SendCommand(command Command)
	// HandleCommand pushes a command toward the handler.
	HandleCommand(command Command)
}
