// internal/quotes/data.go
package quotes

var inspirational = []Quote{
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Tags: []string{"general", "dreams", "future"}},
	{Text: "Choose a job you love, and you will never have to work a day in your life.", Author: "Confucius", Tags: []string{"passion", "career", "work"}},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Tags: []string{"passion", "work", "technology", "innovation"}},
	{Text: "Develop a passion for learning. If you do, you will never cease to grow.", Author: "Anthony J. D'Angelo", Tags: []string{"learning", "growth", "education"}},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker", Tags: []string{"action", "future", "innovation", "business", "entrepreneurship"}},
	{Text: "Success is not final, failure is not fatal: It is the courage to continue that counts.", Author: "Winston Churchill", Tags: []string{"perseverance", "resilience", "success", "failure"}},
	{Text: "Your work is going to fill a large part of your life, and the only way to be truly satisfied is to do what you believe is great work.", Author: "Steve Jobs", Tags: []string{"passion", "career", "technology", "work"}},
	{Text: "The mind is everything. What you think you become.", Author: "Buddha", Tags: []string{"mindset", "general", "philosophy"}},
	{Text: "Strive not to be a success, but rather to be of value.", Author: "Albert Einstein", Tags: []string{"value", "impact", "science", "success"}},
	{Text: "The arts are not a way to make a living. They are a very human way of making life more bearable.", Author: "Kurt Vonnegut", Tags: []string{"arts", "humanity", "creativity", "writing"}},
	{Text: "To practice any art, no matter how well or badly, is a way to make your soul grow.", Author: "Kurt Vonnegut", Tags: []string{"arts", "creativity", "growth", "writing"}},
	{Text: "Technology is just a tool. In terms of getting the kids working together and motivating them, the teacher is the most important.", Author: "Bill Gates", Tags: []string{"technology", "education", "teaching", "tools"}},
	{Text: "The beautiful thing about learning is that no one can take it away from you.", Author: "B.B. King", Tags: []string{"learning", "education", "music"}},
	{Text: "An investment in knowledge pays the best interest.", Author: "Benjamin Franklin", Tags: []string{"learning", "knowledge", "education", "finance"}},
	{Text: "The expert in anything was once a beginner.", Author: "Helen Hayes", Tags: []string{"learning", "beginner", "growth", "skills"}},
	{Text: "It is never too late to be what you might have been.", Author: "George Eliot", Tags: []string{"dreams", "change", "career", "potential"}},
	{Text: "Go confidently in the direction of your dreams. Live the life you've imagined.", Author: "Henry David Thoreau", Tags: []string{"dreams", "action", "confidence"}},
	{Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt", Tags: []string{"mindset", "future", "doubt", "potential"}},
	{Text: "Creativity is intelligence having fun.", Author: "Albert Einstein", Tags: []string{"creativity", "intelligence", "science", "fun"}},
	{Text: "The best careers are not about the money, but about the mission.", Author: "Unknown", Tags: []string{"passion", "mission", "career", "value"}},
	{Text: "Don’t watch the clock; do what it does. Keep going.", Author: "Sam Levenson", Tags: []string{"perseverance", "action", "time"}},
	{Text: "Build your own dreams, or someone else will hire you to build theirs.", Author: "Farrah Gray", Tags: []string{"dreams", "entrepreneurship", "action", "business", "career"}},
	{Text: "The journey of a thousand miles begins with a single step.", Author: "Lao Tzu", Tags: []string{"action", "journey", "beginner", "philosophy"}},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt", Tags: []string{"mindset", "confidence", "belief"}},
	{Text: "What you get by achieving your goals is not as important as what you become by achieving your goals.", Author: "Zig Ziglar", Tags: []string{"growth", "goals", "journey"}},
	{Text: "The harder I work, the luckier I get.", Author: "Samuel Goldwyn", Tags: []string{"work", "perseverance", "success"}},
	{Text: "Do not wait to strike till the iron is hot; but make it hot by striking.", Author: "William Butler Yeats", Tags: []string{"action", "initiative", "opportunity"}},
	{Text: "Opportunities don't happen, you create them.", Author: "Chris Grosser", Tags: []string{"opportunity", "action", "entrepreneurship"}},
	{Text: "The only person you are destined to become is the person you decide to be.", Author: "Ralph Waldo Emerson", Tags: []string{"potential", "choice", "self"}},
	{Text: "If you want to lift yourself up, lift up someone else.", Author: "Booker T. Washington", Tags: []string{"service", "community", "impact", "collaboration"}},
	{Text: "The purpose of our lives is to be happy.", Author: "Dalai Lama", Tags: []string{"happiness", "life", "philosophy"}},
	{Text: "Get action. Seize the moment. Man was never intended to become an oyster.", Author: "Theodore Roosevelt", Tags: []string{"action", "initiative"}},
	{Text: "The difference between ordinary and extraordinary is that little extra.", Author: "Jimmy Johnson", Tags: []string{"effort", "excellence", "success"}},
	{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci", Tags: []string{"learning", "knowledge", "arts", "science"}},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb", Tags: []string{"action", "opportunity", "future", "time"}},
	{Text: "You miss 100% of the shots you don’t take.", Author: "Wayne Gretzky", Tags: []string{"action", "risk", "opportunity", "sports"}},
	{Text: "I have not failed. I've just found 10,000 ways that won't work.", Author: "Thomas A. Edison", Tags: []string{"failure", "perseverance", "learning", "innovation", "science"}},
	{Text: "If you can dream it, you can do it.", Author: "Walt Disney", Tags: []string{"dreams", "action", "belief", "creativity"}},
	{Text: "Dream big and dare to fail.", Author: "Norman Vaughan", Tags: []string{"dreams", "risk", "failure", "action"}},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James", Tags: []string{"action", "impact", "value"}},
}
