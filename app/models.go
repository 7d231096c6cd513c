package app

// GreetingModel produces the greeting shown by the hello controller and view.
type GreetingModel struct {
	Name string
	Text string
}

func (m *GreetingModel) Execute() {
	if m.Name == "" {
		m.Name = "world"
	}
	m.Text = "Hello, " + m.Name
}

// User is a demo record served by the user/list controller.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserModel loads the demo users.
type UserModel struct {
	Users []User
}

func (m *UserModel) Execute() {
	m.Users = []User{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Linus"},
		{ID: 3, Name: "Grace"},
	}
}
