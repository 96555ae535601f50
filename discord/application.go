// Copyright 2026 The Accord Authors
// SPDX-License-Identifier: Apache-2.0

package discord

// Application is the partial application object delivered in READY.
type Application struct {
	ID    ApplicationID `json:"id"`
	Flags uint64        `json:"flags,omitempty"`
}

// ApplicationCommandOptionType discriminates slash-command option
// kinds.
type ApplicationCommandOptionType uint8

const (
	OptionSubCommand      ApplicationCommandOptionType = 1
	OptionSubCommandGroup ApplicationCommandOptionType = 2
	OptionString          ApplicationCommandOptionType = 3
	OptionInteger         ApplicationCommandOptionType = 4
	OptionBoolean         ApplicationCommandOptionType = 5
	OptionUser            ApplicationCommandOptionType = 6
	OptionChannel         ApplicationCommandOptionType = 7
	OptionRole            ApplicationCommandOptionType = 8
)

// ApplicationCommand is a registered slash command. The ID is a plain
// snowflake: command IDs live in their own namespace and never cross
// into the typed ID positions.
type ApplicationCommand struct {
	ID            Snowflake                  `json:"id"`
	ApplicationID ApplicationID              `json:"application_id"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description"`
	Options       []ApplicationCommandOption `json:"options,omitempty"`
}

// ApplicationCommandOption is one parameter of a slash command.
// Sub-command options nest further options.
type ApplicationCommandOption struct {
	Type        ApplicationCommandOptionType     `json:"type"`
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Required    bool                             `json:"required,omitempty"`
	Choices     []ApplicationCommandOptionChoice `json:"choices,omitempty"`
	Options     []ApplicationCommandOption       `json:"options,omitempty"`
}

// ApplicationCommandOptionChoice is a fixed choice for an option.
type ApplicationCommandOptionChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
