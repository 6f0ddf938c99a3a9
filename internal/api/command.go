package api

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is the definition of metadata for a command.
type Command struct {
	ID      int
	User    string
	UserID  int64
	Content string
}

// ParseCommand creates a command from the raw message details.
func ParseCommand(id int, user string, userID int64, content string) Command {
	return Command{
		ID:      id,
		User:    user,
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}
}

// Exec returns the leading command token.
func (c Command) Exec() string {
	cmd := strings.Fields(c.Content)
	if len(cmd) == 0 {
		return ""
	}
	return cmd[0]
}

// Args returns the positional arguments following the command token.
func (c Command) Args() []string {
	cmd := strings.Fields(c.Content)
	if len(cmd) <= 1 {
		return []string{}
	}
	return cmd[1:]
}

// Validator is a validation function that checks the string for the given type.
type Validator func(string) error

// Validate validates the command arguments with the given validators.
func (c Command) Validate(args ...Validator) error {
	options := c.Args()
	for i, arg := range args {
		option := ""
		if i < len(options) {
			option = options[i]
		}
		err := arg(option)
		if err != nil {
			return fmt.Errorf("error for argument '%s' at %d: %w", option, i, err)
		}
	}
	return nil
}

// NotEmpty is a predefined Validator that checks if the argument is empty.
func NotEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// OneOf is a predefined Validator checking that the value is one of the provided arguments.
// it passes the reference to the value to the given interface argument.
func OneOf(v *string, args ...string) Validator {
	return func(s string) error {
		var isOneOf bool
		for _, arg := range args {
			if arg == s {
				isOneOf = true
			}
		}
		if !isOneOf {
			return fmt.Errorf("must be one of %v", args)
		}
		if v != nil {
			*v = s
		}
		return nil
	}
}

// Int is a predefined Validator checking that the argument is an int.
// it passes the reference to the value to the given interface argument.
func Int(d *int) Validator {
	return func(s string) error {
		number, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*d = int(number)
		return nil
	}
}
