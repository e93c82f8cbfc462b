package cli

// Command is one user action. The controller consumes commands one at a
// time and runs each to completion.
type Command interface {
	commandName() string
}

type Login struct {
	Username string
	Password string
}

type Register struct {
	Username string
	Password string
	Confirm  string
}

type Logout struct{}

// SetFilter selects a category; an empty Category clears the filter.
type SetFilter struct {
	Category string
}

type CreateTopic struct {
	Title    string
	Category string
	Content  string
}

type ViewTopic struct {
	ID int64
}

type Render struct{}

func (Login) commandName() string       { return "login" }
func (Register) commandName() string    { return "register" }
func (Logout) commandName() string      { return "logout" }
func (SetFilter) commandName() string   { return "filter" }
func (CreateTopic) commandName() string { return "create_topic" }
func (ViewTopic) commandName() string   { return "view_topic" }
func (Render) commandName() string      { return "render" }
