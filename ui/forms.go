package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// signupResult shows the JSON message the signup endpoint answers with.
const signupResult = `const r = document.getElementById('signup-result');` +
	`try { const body = JSON.parse(event.detail.xhr.responseText);` +
	` r.textContent = body.message; r.className = body.success ? 'mt-2 text-green-700' : 'mt-2 text-red-700';` +
	` if (body.success) this.reset(); } catch (e) { r.textContent = 'Signup failed'; }`

func formField(label, name, inputType string) g.Node {
	return Div(
		Class("mb-2"),
		Label(For("signup-"+name), Class("block font-bold"), g.Text(label)),
		Input(
			Type(inputType),
			ID("signup-"+name),
			Name(name),
			Class("w-full p-2 border rounded"),
			Required(),
		),
	)
}

// SignupForm is the newsletter form. The endpoint answers with JSON, so the
// form swaps nothing and writes the message into the result line instead.
func SignupForm() g.Node {
	return Section(
		ID("signup"),
		Class("max-w-md mt-12"),
		H2(Class("text-2xl font-semibold mb-4"), g.Text("Newsletter")),
		Form(
			hx.Post("/api/signup"),
			hx.Swap("none"),
			g.Attr("hx-on::after-request", signupResult),
			formField("Name", "name", "text"),
			formField("Email", "email", "email"),
			button("Sign up", withType("submit")),
			Div(ID("signup-result"), Class("mt-2")),
		),
	)
}
