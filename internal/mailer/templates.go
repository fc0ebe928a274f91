package mailer

// interviewPrepTemplate takes: user name, company, match score, tips <li> HTML.
const interviewPrepTemplate = `<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden;">
  <div style="background-color: #4f46e5; padding: 20px; text-align: center;">
    <h1 style="color: #ffffff; margin: 0;">Congratulations, %s!</h1>
  </div>
  <div style="padding: 30px;">
    <p style="font-size: 16px;">Great news! Your application for <strong>%s</strong> has moved to the <strong>Interview</strong> stage.</p>
    <div style="background-color: #f9fafb; border-radius: 6px; padding: 20px; margin: 20px 0; border-left: 4px solid #4f46e5;">
      <h3 style="margin-top: 0; color: #111827;">AI Interview Prep Guide</h3>
      <p style="margin-bottom: 5px;">Based on your most recent analysis, your match score is:</p>
      <div style="font-size: 24px; font-weight: bold; color: #4f46e5;">%s%%</div>
    </div>
    <h4 style="color: #374151; border-bottom: 1px solid #e5e7eb; padding-bottom: 8px;">Key Points to Focus On:</h4>
    <ul style="padding-left: 20px; color: #4b5563;">%s</ul>
    <p style="margin-top: 30px;">Good luck with your interview!</p>
  </div>
</div>`

// reminderTemplate takes: company, company.
const reminderTemplate = `<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
  <p>Hi! It's been 7 days since you applied to <strong>%s</strong>.</p>
  <p>Would you like to send a follow-up email to check the status of your %s application?</p>
</div>`
