package rules

const (
	// CauseWallCollision is the end reason when the snake hits the border
	CauseWallCollision = "wall-collision"
	// CauseSelfCollision is the end reason when the snake runs into its own body
	CauseSelfCollision = "self-collision"
	// CauseBoardFilled is the end reason when the snake fills every interior cell
	CauseBoardFilled = "board-filled"
)
