// Package catalog holds the static registry of coding tools and games shown
// on the site. It is pure data: every entry points at a client-side route and
// an icon asset, and the list never changes at runtime.
package catalog

import "github.com/devtushar001/ietark/pkg/storage"

// Tool is one entry of the tools/games catalogue.
type Tool struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Category string `json:"category"`
	Icon     string `json:"image"`
	Path     string `json:"url"`
}

// Category difficulty buckets, in display order.
var Categories = []string{"basic", "intermediate", "advanced"}

var tools = []Tool{
	{ID: "1", Name: "Get prime numbers between the range.", Nickname: "Prime", Category: "basic", Icon: "icons/range.png", Path: "/tools/prime"},
	{ID: "3", Name: "Find Fibonacci sequence.", Nickname: "Fibo", Category: "basic", Icon: "icons/shuffle.png", Path: "/tools/fibonacci"},
	{ID: "4", Name: "Check if a number is palindrome.", Nickname: "Pali", Category: "basic", Icon: "icons/swap.png", Path: "/tools/palindrome"},
	{ID: "5", Name: "Sort an array in ascending order.", Nickname: "Ascending", Category: "basic", Icon: "icons/large.png", Path: "/tools/sort-ascending"},
	{ID: "6", Name: "Reverse a string.", Nickname: "Reverse", Category: "basic", Icon: "icons/boy.png", Path: "/tools/reverse-string"},
	{ID: "7", Name: "Find largest number in an array.", Nickname: "Large", Category: "basic", Icon: "icons/sort-descending.png", Path: "/tools/largest-number"},
	{ID: "8", Name: "Convert temperature units.", Nickname: "Temp", Category: "basic", Icon: "icons/thermometer.png", Path: "/tools/temperature"},
	{ID: "9", Name: "Check if a year is a leap year.", Nickname: "Leap", Category: "basic", Icon: "icons/boy.png", Path: "/tools/leap-year"},
	{ID: "10", Name: "Generate random numbers.", Nickname: "Random", Category: "basic", Icon: "icons/range.png", Path: "/tools/random-numbers"},
	{ID: "11", Name: "Analogue Clock", Nickname: "Clock", Category: "basic", Icon: "icons/clock.png", Path: "/tools/analog-clock"},
	{ID: "12", Name: "Number guessing game", Nickname: "Number Guess", Category: "basic", Icon: "icons/app.png", Path: "/games/number-guessing"},
	{ID: "13", Name: "Random array generating", Nickname: "Random Array", Category: "basic", Icon: "icons/shuffle.png", Path: "/tools/random-array"},
	{ID: "14", Name: "Todo list app", Nickname: "Todo App", Category: "basic", Icon: "icons/add.png", Path: "/tools/todo-list"},
	{ID: "15", Name: "Rock paper scissor", Nickname: "R-P-C", Category: "basic", Icon: "icons/app.png", Path: "/games/rock-paper-scissor"},
	{ID: "16", Name: "Crud operation in mongoose", Nickname: "CRUD", Category: "intermediate", Icon: "icons/cNet.png", Path: "/games/crud"},
	{ID: "17", Name: "Razorpay payment gateway", Nickname: "Razorpay", Category: "advanced", Icon: "icons/shopping-cart.png", Path: "/games/razorpay"},
	{ID: "18", Name: "Generate hexa code and rgb", Nickname: "Color code", Category: "basic", Icon: "icons/layout.png", Path: "/css/generate-color"},
	{ID: "19", Name: "Count Down Timer", Nickname: "Timer", Category: "basic", Icon: "icons/fast-time.png", Path: "/tools/timer"},
	{ID: "20", Name: "Two sum returning index", Nickname: "Two sum", Category: "basic", Icon: "icons/lines.png", Path: "/tools/two-sum"},
	{ID: "21", Name: "Text to voice generator", Nickname: "Text-Voice", Category: "basic", Icon: "icons/voice-search.png", Path: "/tools/text-to-voice"},
	{ID: "22", Name: "Image Uploader", Nickname: "Image Up", Category: "advanced", Icon: "icons/image-upload.png", Path: "/tools/image-uploader"},
	{ID: "23", Name: "Text Editor", Nickname: "Text Board", Category: "advanced", Icon: "icons/content-creator.png", Path: "/tools/text-editor"},
}

// All returns every catalogue entry with icon paths resolved to public URLs
// on the configured storage disk.
func All() []Tool {
	out := make([]Tool, len(tools))
	for i, t := range tools {
		t.Icon = storage.URL(t.Icon)
		out[i] = t
	}
	return out
}

// ByID returns the tool with the given id.
func ByID(id string) (Tool, bool) {
	for _, t := range tools {
		if t.ID == id {
			t.Icon = storage.URL(t.Icon)
			return t, true
		}
	}
	return Tool{}, false
}

// ByCategory returns all tools in the given category.
func ByCategory(category string) []Tool {
	var out []Tool
	for _, t := range tools {
		if t.Category == category {
			t.Icon = storage.URL(t.Icon)
			out = append(out, t)
		}
	}
	return out
}
