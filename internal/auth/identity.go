package auth

// GoogleIdentity holds verified identity claims returned by Google.
type GoogleIdentity struct {
	Subject   string
	Email     string
	Name      *string
	AvatarURL *string
}
