package najia

// Version is the release of the najia module. Release builds override it
// with -ldflags "-X github.com/aretw0/najia.Version=...".
var Version = "0.3.0"
