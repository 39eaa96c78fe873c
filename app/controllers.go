package app

import (
	"net/http"
	"strconv"

	gohttp "github.com/armature-go/armature/framework/http"
)

// UserController handles the /users resource. It is constructed by the
// container: both dependencies inject automatically.
type UserController struct {
	users *UserRepository
	clock *Clock
}

func NewUserController(users *UserRepository, clock *Clock) *UserController {
	return &UserController{users: users, clock: clock}
}

// Index — GET /users
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(map[string]any{
		"users":        c.users.All(),
		"generated_at": c.clock.Now(),
	})
}

// Show — GET /users/{id}
func (c *UserController) Show(w http.ResponseWriter, r *http.Request, id string) {
	res := gohttp.NewResponse(w)
	n, err := strconv.Atoi(id)
	if err != nil {
		res.Error(http.StatusBadRequest, "id must be numeric")
		return
	}
	u, ok := c.users.Find(n)
	if !ok {
		res.NotFound()
		return
	}
	res.Success(u)
}

// Store — POST /users
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	if body.Name == "" || body.Email == "" {
		res.Error(http.StatusUnprocessableEntity, "name and email are required")
		return
	}
	res.Created(c.users.Create(body.Name, body.Email))
}

// Update — PUT/PATCH /users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request, id string) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	n, err := strconv.Atoi(id)
	if err != nil {
		res.Error(http.StatusBadRequest, "id must be numeric")
		return
	}
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	u, ok := c.users.Update(n, body.Name, body.Email)
	if !ok {
		res.NotFound()
		return
	}
	res.Success(u)
}

// Destroy — DELETE /users/{id}
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request, id string) {
	res := gohttp.NewResponse(w)
	n, err := strconv.Atoi(id)
	if err != nil {
		res.Error(http.StatusBadRequest, "id must be numeric")
		return
	}
	if !c.users.Delete(n) {
		res.NotFound()
		return
	}
	res.NoContent()
}

// Ping is wired as a static action — dispatched without constructing a
// controller instance.
func Ping(w http.ResponseWriter) {
	gohttp.NewResponse(w).Success(map[string]any{"pong": true})
}
