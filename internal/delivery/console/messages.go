// messages.go contains message templates for the console.

package console

const (
	msgQuestion        = "What is the correct character for the romanized form '%s'?"
	msgOption          = "%d. %s"
	msgCorrectOption   = "%d. %s *"
	msgChoicePrompt    = "Enter the number of your choice: "
	msgInvalidInput    = "Invalid input. Please enter a number."
	msgInvalidChoice   = "Invalid choice. Please select a number between 1 and %d."
	msgCorrect         = "Correct!"
	msgWrong           = "Wrong! The correct answer was '%s'"
	msgScore           = "Score: %d/%d"
	msgQuizCompleted   = "Quiz Completed! Your final score is %d/%d"
	msgRestartPrompt   = "Do you want to restart the quiz? (yes/no): "
	msgFarewell        = "Thank you for playing!"
	restartConfirmWord = "yes"
)
