package content

import (
	folio "github.com/niya-shroff/folio"
)

var Poems = []folio.Poem{
	{
		ID:      1,
		Title:   "Echoes of Silence",
		Excerpt: "In the quiet moments between breaths...",
		Content: `In the quiet moments between breaths,
Where shadows dance with light,
I find the truth of who we are,
Hidden from plain sight.

The world keeps spinning, loud and fast,
But here the time stands still,
A sanctuary built of glass,
Upon a distant hill.`,
	},
	{
		ID:      2,
		Title:   "Digital Dreams",
		Excerpt: "Pixels falling like summer rain...",
		Content: `Pixels falling like summer rain,
On screens of glowing blue,
We chase the ghosts of yesterday,
In servers old and new.

Connection lost, connection found,
In webs of copper wire,
We build our castles underground,
And set the code on fire.`,
	},
	{
		ID:      3,
		Title:   "The Alchemist",
		Excerpt: "Turning lead moments into golden memories...",
		Content: `Turning lead moments into golden memories,
With hands stained dark with ink,
We write our stories on the wind,
Before the sun can sink.

Each word a spell, each line a curse,
To bind the fleeting soul,
For better, strange, or maybe worse,
To make the fragments whole.`,
	},
}
