package chat

import "strings"

type keywordGroup struct {
	keywords []string
	reply    string
}

// Groups are checked in order and the first match wins, so a message that
// greets and asks about careers gets the greeting.
var keywordGroups = []keywordGroup{
	{
		keywords: []string{"hello", "hi", "hey", "greetings"},
		reply:    "Hello! I'm your CareerCompass AI assistant. I'm here to help you with career guidance, job search tips, skill development, and resume advice. What would you like to know?",
	},
	{
		keywords: []string{"career", "guidance", "advice", "path"},
		reply:    "I'd be happy to help with career guidance! To provide the best advice, could you tell me more about your current situation? Are you a student looking to choose a career path, someone considering a career change, or looking to advance in your current field?",
	},
	{
		keywords: []string{"job", "search", "finding", "employment"},
		reply:    "Great! Job searching can be challenging, but I'm here to help. Here are some key tips:\n\n1. Tailor your resume for each application\n2. Use job boards like LinkedIn, Indeed, and company websites\n3. Network with professionals in your field\n4. Prepare for interviews by researching companies\n5. Follow up after applications\n\nWhat specific aspect of job searching would you like to focus on?",
	},
	{
		keywords: []string{"resume", "cv", "curriculum"},
		reply:    "I can definitely help with resume advice! A strong resume should:\n\n• Have a clear, professional format\n• Include relevant keywords from job descriptions\n• Highlight your achievements with specific metrics\n• Be tailored to each position\n• Include a compelling summary statement\n\nWould you like specific advice for any particular section of your resume?",
	},
	{
		keywords: []string{"skill", "skills", "development", "learning"},
		reply:    "Skill development is crucial for career growth! Here's how to approach it:\n\n1. Identify in-demand skills in your field\n2. Take online courses (Coursera, Udemy, LinkedIn Learning)\n3. Practice through projects and volunteering\n4. Seek mentorship and feedback\n5. Stay updated with industry trends\n\nWhat specific skills are you looking to develop?",
	},
	{
		keywords: []string{"interview", "interviews", "interviewing"},
		reply:    "Interview preparation is key to success! Here are essential tips:\n\n• Research the company and role thoroughly\n• Practice common interview questions\n• Prepare specific examples using the STAR method\n• Dress appropriately and arrive early\n• Prepare thoughtful questions to ask the interviewer\n• Follow up with a thank-you email\n\nWould you like help with any specific type of interview questions?",
	},
	{
		keywords: []string{"salary", "negotiate", "compensation", "pay"},
		reply:    "Salary negotiation is an important skill! Here's how to approach it:\n\n1. Research market rates for your role and location\n2. Consider your total compensation package\n3. Wait for the right moment (usually after a job offer)\n4. Present your case with data and achievements\n5. Be prepared to discuss non-salary benefits\n\nRemember, negotiation is often expected and shows your value!",
	},
	{
		keywords: []string{"networking", "network", "connections"},
		reply:    "Networking is one of the most effective ways to advance your career! Try these strategies:\n\n• Attend industry events and conferences\n• Join professional associations\n• Use LinkedIn to connect with colleagues\n• Offer help and value to others first\n• Follow up and maintain relationships\n• Consider informational interviews\n\nBuilding genuine relationships is key to successful networking.",
	},
	{
		keywords: []string{"thank", "thanks", "appreciate"},
		reply:    "You're very welcome! I'm here to help you succeed in your career journey. Feel free to ask me anything about career development, job searching, or professional growth anytime!",
	},
}

const defaultReply = "I'm here to help with your career development! I can assist with:\n\n• Career guidance and planning\n• Job search strategies\n• Resume and cover letter advice\n• Interview preparation\n• Skill development recommendations\n• Networking tips\n• Salary negotiation\n\nWhat specific area would you like to explore?"

// FallbackResponder answers from a fixed set of career-advice paragraphs by
// substring keyword matching. It never fails.
type FallbackResponder struct{}

func (FallbackResponder) Respond(message string) string {
	msg := strings.ToLower(message)
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(msg, kw) {
				return g.reply
			}
		}
	}
	return defaultReply
}
