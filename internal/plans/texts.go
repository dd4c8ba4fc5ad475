package plans

const beginnerPlan = `BEGINNER WORKOUT PLAN

Week 1-2: Foundation Building
Train 3 days per week with at least one rest day between sessions.

WARM-UP (5-10 minutes)
• March in place: 2 minutes
• Arm circles: 10 each direction
• Hip circles: 10 each direction
• Bodyweight good mornings: 10 reps

Day 1 - Upper Body:
• Push-ups (knees if needed): 2 sets of 8-12 reps, rest 60 seconds
• Dumbbell rows: 2 sets of 10-12 reps per arm, rest 60 seconds
• Shoulder press: 2 sets of 8-10 reps, rest 60 seconds
• Plank: 2 sets of 20-30 seconds, rest 45 seconds

Day 2 - Lower Body:
• Bodyweight squats: 2 sets of 10-15 reps, rest 60 seconds
• Lunges: 2 sets of 8-10 per leg, rest 60 seconds
• Glute bridges: 2 sets of 12-15 reps, rest 45 seconds
• Calf raises: 2 sets of 15-20 reps, rest 45 seconds

Day 3 - Full Body:
• Modified burpees: 2 sets of 5-8 reps, rest 90 seconds
• Wall sits: 2 sets of 15-30 seconds, rest 60 seconds
• Dead bugs: 2 sets of 8-10 per side, rest 45 seconds
• Bird dogs: 2 sets of 8 per side, rest 45 seconds

COOL-DOWN (5-10 minutes)
• Slow walk: 3 minutes
• Hamstring stretch: 30 seconds per leg
• Chest doorway stretch: 30 seconds
• Child's pose: 60 seconds

Tips: Focus on proper form over speed. Add 1-2 reps per set each week.
Stop any exercise that causes sharp pain.`

const cardioPlan = `CARDIO & WEIGHT LOSS PROGRAM

Week 1-4: Progressive Cardio Program
Train 5 days per week. Increase duration or intensity by about 10% each week.

WARM-UP (5 minutes)
• Easy walk or cycle: 3 minutes
• Leg swings: 10 per leg
• Jumping jacks: 30 seconds

Day 1 - Low-Intensity Steady State:
• 20-30 minutes brisk walking or cycling
• Keep heart rate at 60-70% of max

Day 2 - Interval Training:
• 8 rounds: 30 seconds high intensity, 90 seconds recovery
• Rest 2 minutes, then repeat 4 more rounds if you feel strong

Day 3 - Active Recovery:
• 15-20 minutes gentle yoga or stretching
• 10-15 minutes light walking

Day 4 - Circuit Training (3 rounds):
• Jumping jacks: 30 seconds
• Mountain climbers: 30 seconds
• High knees: 30 seconds
• Bodyweight squats: 30 seconds
• Rest: 60 seconds between rounds

Day 5 - Long, Slow Distance:
• 30-45 minutes at a comfortable conversational pace
• Focus on steady breathing and endurance

COOL-DOWN (5-10 minutes)
• Easy walk: 3-5 minutes
• Calf stretch: 30 seconds per leg
• Quad stretch: 30 seconds per leg
• Deep breathing: 1 minute

Nutrition: Stay hydrated and eat a light snack with protein after each session.`

const strengthPlan = `STRENGTH TRAINING PROGRAM

4-Week Progressive Program
Train 3 days per week. Rest 48-72 hours before training the same muscle group again.

WARM-UP (8-10 minutes)
• Rowing or brisk walk: 5 minutes
• Band pull-aparts: 15 reps
• Bodyweight squats: 10 reps
• One light warm-up set of the first exercise

Day 1 - Push (Chest, Shoulders, Triceps):
• Bench press or push-ups: 3 sets of 8-12 reps, rest 90 seconds
• Overhead press: 3 sets of 8-10 reps, rest 90 seconds
• Dips or tricep extensions: 3 sets of 10-12 reps, rest 60 seconds
• Lateral raises: 3 sets of 12-15 reps, rest 60 seconds

Day 2 - Pull (Back, Biceps):
• Pull-ups or rows: 3 sets of 8-12 reps, rest 90 seconds
• Lat pulldowns: 3 sets of 10-12 reps, rest 90 seconds
• Bicep curls: 3 sets of 10-12 reps, rest 60 seconds
• Face pulls: 3 sets of 12-15 reps, rest 60 seconds

Day 3 - Legs:
• Squats: 3 sets of 10-15 reps, rest 2 minutes
• Romanian deadlifts: 3 sets of 8-10 reps, rest 2 minutes
• Leg press or lunges: 3 sets of 12-15 reps, rest 90 seconds
• Calf raises: 3 sets of 15-20 reps, rest 60 seconds

COOL-DOWN (5-10 minutes)
• Easy walk: 3 minutes
• Pigeon stretch: 45 seconds per side
• Lat stretch: 30 seconds per side
• Triceps stretch: 30 seconds per arm

Progression: Increase the weight when you can complete all sets at the top of the rep range with good form.`

const homePlan = `HOME BODYWEIGHT WORKOUT

30-minute sessions, no equipment needed.
Alternate Workout A and Workout B, with walking or rest days in between.

WARM-UP (5 minutes)
• Jog in place: 1 minute
• Arm circles: 30 seconds
• Inchworms: 5 reps
• Bodyweight squats: 10 reps

Workout A - Strength (3 rounds):
• Push-ups: 10-15 reps
• Squats: 15-20 reps
• Reverse lunges: 10 per leg
• Plank: 30-45 seconds
• Rest 60-90 seconds between rounds

Workout B - Conditioning (4 rounds):
• Jumping jacks: 40 seconds
• High knees: 30 seconds
• Burpees: 8-10 reps
• Bicycle crunches: 20 reps
• Rest 60 seconds between rounds

COOL-DOWN (5 minutes)
• Standing forward fold: 45 seconds
• Hip flexor stretch: 30 seconds per side
• Cat-cow: 10 slow reps
• Deep breathing: 1 minute

Tips: Use household items such as water bottles or a backpack for light resistance.
Keep a chair nearby for balance during lunges.`

const generalPlan = `GENERAL FITNESS WORKOUT PLAN

3-Day Full Body Routine
Perform 3 times per week with a rest day between sessions.

WARM-UP (5-10 minutes)
• Brisk walk or light jog: 5 minutes
• Arm circles: 10 each direction
• Leg swings: 10 per leg

Day 1 - Strength & Endurance:
• Squats: 3 sets of 12-15 reps, rest 60 seconds
• Push-ups: 3 sets of 8-12 reps, rest 60 seconds
• Plank: 3 sets of 30-45 seconds, rest 45 seconds
• Jumping jacks: 3 sets of 20 reps, rest 45 seconds

Day 2 - Cardio & Core:
• 20-minute brisk walk or jog
• Mountain climbers: 3 sets of 15 reps, rest 45 seconds
• Bicycle crunches: 3 sets of 20 reps, rest 45 seconds
• Burpees: 3 sets of 5-8 reps, rest 60 seconds

Day 3 - Flexibility & Balance:
• 15-minute yoga flow
• Single-leg stands: 3 sets of 30 seconds each leg
• Stretching routine: 10-15 minutes

COOL-DOWN (5 minutes)
• Slow walk: 2 minutes
• Full body stretch: 2 minutes
• Deep breathing exercises: 1 minute

Progress by adding reps or a set each week.
Stay hydrated, rest well, and listen to your body!`
