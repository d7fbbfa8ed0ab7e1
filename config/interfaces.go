package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/queuekit/queuekit/$GOPACKAGE IServiceConfiguration

// IServiceConfiguration defines a service configuration.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
