package htmltext

import "testing"

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"bold and italics dropped", "<b>But perhaps</b> the verse is <i>halakhot</i>", "But perhaps the verse is halakhot"},
		{
			"inline links keep their text",
			`as it is written (<a class="refLink" href="/Exodus.23.16" data-ref="Exodus 23:16">Exodus 23:16</a>)`,
			"as it is written (Exodus 23:16)",
		},
		{"entities decoded", "forty <i>se&rsquo;a</i> &amp; more", "forty se’a & more"},
		{"footnote markers dropped", "text<sup>1</sup> continues", "text continues"},
		{"whitespace collapsed", "  spread \n out\ttext ", "spread out text"},
		{"hebrew with markup", `<b>וְדִלְמָא</b> לָא עָיֵיל`, "וְדִלְמָא לָא עָיֵיל"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Strip(tt.in); got != tt.want {
				t.Fatalf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
